// backend-go/internal/viewstate/viewstate.go
package viewstate

// View names one dashboard screen.
type View string

const (
	ViewItems        View = "items"
	ViewItemVendors  View = "itemVendors"
	ViewVendorDetail View = "vendorDetail"
	ViewAllVendors   View = "allVendors"
	ViewTrends       View = "trends"
)

// Frame is one navigation entry: a view plus the selection that opened it.
type Frame struct {
	View       View   `json:"view"`
	ItemCode   string `json:"item_code,omitempty"`
	VendorCode string `json:"vendor_code,omitempty"`
}

// State is the immutable navigation state: the current frame plus the
// breadcrumb trail that led to it. All transitions return a new State.
type State struct {
	Current View
	Item    string
	Vendor  string
	Stack   []Frame
}

// Initial starts at the items view with an empty trail.
func Initial() State {
	return State{Current: ViewItems}
}

// Push navigates to a view, remembering where we came from.
func (s State) Push(frame Frame) State {
	stack := make([]Frame, len(s.Stack), len(s.Stack)+1)
	copy(stack, s.Stack)
	stack = append(stack, Frame{View: s.Current, ItemCode: s.Item, VendorCode: s.Vendor})

	return State{
		Current: frame.View,
		Item:    frame.ItemCode,
		Vendor:  frame.VendorCode,
		Stack:   stack,
	}
}

// Back pops one breadcrumb. Backing out of the root returns to the items view
// with selections cleared.
func (s State) Back() State {
	if len(s.Stack) == 0 {
		return Initial()
	}

	top := s.Stack[len(s.Stack)-1]
	stack := make([]Frame, len(s.Stack)-1)
	copy(stack, s.Stack[:len(s.Stack)-1])

	return State{
		Current: top.View,
		Item:    top.ItemCode,
		Vendor:  top.VendorCode,
		Stack:   stack,
	}
}

// Breadcrumbs returns the trail including the current frame, root first.
func (s State) Breadcrumbs() []Frame {
	trail := make([]Frame, 0, len(s.Stack)+1)
	trail = append(trail, s.Stack...)
	trail = append(trail, Frame{View: s.Current, ItemCode: s.Item, VendorCode: s.Vendor})
	return trail
}
