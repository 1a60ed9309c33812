package mouse

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Rect represents a rectangular hit region in terminal cell coordinates.
type Rect struct {
	X, Y, W, H int
}

// Contains returns true if the point (x, y) is within the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Region is a named rectangular hit region with associated data.
type Region struct {
	ID   string
	Rect Rect
	Data any
}

// HitMap tracks hit regions registered during a single render pass, rebuilt
// fresh every frame by the renderer (C5).
type HitMap struct {
	regions []Region
}

// NewHitMap creates a new empty HitMap.
func NewHitMap() *HitMap {
	return &HitMap{
		regions: make([]Region, 0, 32),
	}
}

// Clear removes all regions from the hit map.
func (h *HitMap) Clear() {
	h.regions = h.regions[:0]
}

// Add adds a new region to the hit map.
func (h *HitMap) Add(id string, rect Rect, data any) {
	h.regions = append(h.regions, Region{ID: id, Rect: rect, Data: data})
}

// AddRect adds a region using individual coordinates.
func (h *HitMap) AddRect(id string, x, y, w, height int, data any) {
	h.Add(id, Rect{X: x, Y: y, W: w, H: height}, data)
}

// Test returns the first region containing the point, or nil if none. Later
// (topmost) registrations win, since modals/dialogs register after the base
// view.
func (h *HitMap) Test(x, y int) *Region {
	for i := len(h.regions) - 1; i >= 0; i-- {
		if h.regions[i].Rect.Contains(x, y) {
			return &h.regions[i]
		}
	}
	return nil
}

// Regions returns a copy of all registered regions (for testing).
func (h *HitMap) Regions() []Region {
	return append([]Region(nil), h.regions...)
}

// Handler combines a HitMap with click/drag state tracking.
type Handler struct {
	HitMap *HitMap

	lastClickX      int
	lastClickY      int
	lastClickTime   time.Time
	lastClickRegion string

	dragging       bool
	dragStartX     int
	dragStartY     int
	dragStartValue int
	dragRegion     string
}

// NewHandler creates a new mouse handler.
func NewHandler() *Handler {
	return &Handler{HitMap: NewHitMap()}
}

// ClickResult represents the result of processing a click event.
type ClickResult struct {
	Region        *Region
	IsDoubleClick bool
}

const doubleClickWindow = 400 * time.Millisecond

// HandleClick processes a mouse click and returns the hit region, tracking
// click timing for double-click detection.
func (h *Handler) HandleClick(x, y int) ClickResult {
	region := h.HitMap.Test(x, y)
	result := ClickResult{Region: region}

	if region != nil {
		now := time.Now()
		if region.ID == h.lastClickRegion && now.Sub(h.lastClickTime) < doubleClickWindow {
			result.IsDoubleClick = true
			h.lastClickRegion = ""
			h.lastClickTime = time.Time{}
		} else {
			h.lastClickRegion = region.ID
			h.lastClickTime = now
			h.lastClickX = x
			h.lastClickY = y
		}
	}

	return result
}

// StartDrag begins tracking a drag operation (e.g. moving the window by its
// title bar, or resizing a split).
func (h *Handler) StartDrag(x, y int, regionID string, startValue int) {
	h.dragging = true
	h.dragStartX = x
	h.dragStartY = y
	h.dragStartValue = startValue
	h.dragRegion = regionID
}

// IsDragging returns true if a drag operation is in progress.
func (h *Handler) IsDragging() bool { return h.dragging }

// DragRegion returns the region ID being dragged.
func (h *Handler) DragRegion() string { return h.dragRegion }

// DragDelta returns the X and Y movement since drag started.
func (h *Handler) DragDelta(x, y int) (dx, dy int) {
	return x - h.dragStartX, y - h.dragStartY
}

// DragStartValue returns the initial value captured when the drag started.
func (h *Handler) DragStartValue() int { return h.dragStartValue }

// EndDrag stops tracking the drag operation.
func (h *Handler) EndDrag() {
	h.dragging = false
	h.dragRegion = ""
}

// Clear clears the hit map; click and drag state are left unchanged.
func (h *Handler) Clear() {
	h.HitMap.Clear()
}

// ActionType represents the type of mouse action detected.
type ActionType int

const (
	ActionNone ActionType = iota
	ActionClick
	ActionDoubleClick
	ActionScrollUp
	ActionScrollDown
	ActionScrollLeft
	ActionScrollRight
	ActionDrag
	ActionDragEnd
	ActionHover
)

// MouseAction represents a processed mouse event, ready for a view's Update
// to switch on.
type MouseAction struct {
	Type   ActionType
	Region *Region
	X, Y   int
	Delta  int
	DragDX int
	DragDY int
}

// HandleMouse is a convenience method for processing tea.MouseMsg events.
func (h *Handler) HandleMouse(msg tea.MouseMsg) MouseAction {
	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonLeft:
			result := h.HandleClick(msg.X, msg.Y)
			if result.Region == nil {
				return MouseAction{Type: ActionNone}
			}
			if result.IsDoubleClick {
				return MouseAction{Type: ActionDoubleClick, Region: result.Region, X: msg.X, Y: msg.Y}
			}
			return MouseAction{Type: ActionClick, Region: result.Region, X: msg.X, Y: msg.Y}
		case tea.MouseButtonWheelUp:
			region := h.HitMap.Test(msg.X, msg.Y)
			if msg.Shift {
				return MouseAction{Type: ActionScrollLeft, Region: region, X: msg.X, Y: msg.Y, Delta: -10}
			}
			return MouseAction{Type: ActionScrollUp, Region: region, X: msg.X, Y: msg.Y, Delta: -3}
		case tea.MouseButtonWheelDown:
			region := h.HitMap.Test(msg.X, msg.Y)
			if msg.Shift {
				return MouseAction{Type: ActionScrollRight, Region: region, X: msg.X, Y: msg.Y, Delta: 10}
			}
			return MouseAction{Type: ActionScrollDown, Region: region, X: msg.X, Y: msg.Y, Delta: 3}
		case tea.MouseButtonWheelLeft:
			region := h.HitMap.Test(msg.X, msg.Y)
			return MouseAction{Type: ActionScrollRight, Region: region, X: msg.X, Y: msg.Y, Delta: 10}
		case tea.MouseButtonWheelRight:
			region := h.HitMap.Test(msg.X, msg.Y)
			return MouseAction{Type: ActionScrollLeft, Region: region, X: msg.X, Y: msg.Y, Delta: -10}
		}

	case tea.MouseActionRelease:
		if h.dragging {
			h.EndDrag()
			return MouseAction{Type: ActionDragEnd}
		}

	case tea.MouseActionMotion:
		if h.dragging {
			dx, dy := h.DragDelta(msg.X, msg.Y)
			return MouseAction{Type: ActionDrag, X: msg.X, Y: msg.Y, DragDX: dx, DragDY: dy}
		}
		region := h.HitMap.Test(msg.X, msg.Y)
		return MouseAction{Type: ActionHover, Region: region, X: msg.X, Y: msg.Y}
	}

	return MouseAction{Type: ActionNone}
}
