package schema

// Base carries the fields common to every AST node the compiler emits:
// a per-CU unique id and a source range. Concrete node structs embed
// Base and get Kind()/SrcRange() for free via the NodeType field each
// one sets independently (the compiler repeats "nodeType" on every
// node rather than inferring it from Go's static type, so Base stores
// it explicitly instead of deriving it by reflection).
type Base struct {
	ID       int64  `json:"id"`
	NodeType string `json:"nodeType"`
	Src      Src    `json:"src"`
}

func (b Base) Kind() string    { return b.NodeType }
func (b Base) SrcRange() Src   { return b.Src }
func (b Base) NodeID() int64   { return b.ID }

// Documentation models the compiler's two historical encodings of a
// node's natspec comment: older compiler versions emit a bare string,
// newer ones a StructuredDocumentation object. UnmarshalJSON accepts
// either, collapsing both into Text; when the newer object form is
// used, HasNode/ID/Src carry the underlying node's own identity so a
// real StructuredDocumentation IR node can be built for it (the bare
// string form has no node of its own to build — there is nothing to
// zip against in the other CU's traversal per spec.md §4.3(b)).
type Documentation struct {
	Text    string
	HasNode bool
	ID      int64
	Src     Src
}

func (d *Documentation) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || string(data) == "null" {
		d.Text = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := jsonUnmarshal(data, &s); err != nil {
			return err
		}
		d.Text = s
		return nil
	}
	var sd StructuredDocumentation
	if err := jsonUnmarshal(data, &sd); err != nil {
		return err
	}
	d.Text = sd.Text
	d.HasNode = true
	d.ID = sd.ID
	d.Src = sd.Src
	return nil
}
