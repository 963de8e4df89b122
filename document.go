package sdnaddr

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// SDNNamespace is the XML namespace of the OFAC advanced SDN export
// https://sanctionslistservice.ofac.treas.gov
const SDNNamespace = "https://sanctionslistservice.ofac.treas.gov/api/PublicationPreview/exports/ADVANCED_XML"

// PossibleAssets are the digital currency symbols the SDN list publishes
// address feature types for.
var PossibleAssets = []string{
	"XBT", "ETH", "XMR", "LTC", "ZEC", "DASH", "BTG", "ETC",
	"BSV", "BCH", "XVG", "USDT", "XRP", "ARB", "BSC", "USDC",
	"TRX",
}

const (
	defaultMaxDepth    = 256
	defaultMaxElements = 16_000_000
	defaultMaxInput    = int64(1) << 30 // the full sdn_advanced.xml is a few hundred MB
)

type Options struct {
	// Namespace overrides the element namespace used for lookups.
	// Defaults to SDNNamespace.
	Namespace string

	// MaxDepth, MaxElements and MaxInput bound the parser against
	// pathological documents. Zero means the default limit.
	MaxDepth    int
	MaxElements int
	MaxInput    int64
}

func (o *Options) withDefaults() Options {
	var out Options
	if o != nil {
		out = *o
	}
	if out.Namespace == "" {
		out.Namespace = SDNNamespace
	}
	if out.MaxDepth == 0 {
		out.MaxDepth = defaultMaxDepth
	}
	if out.MaxElements == 0 {
		out.MaxElements = defaultMaxElements
	}
	if out.MaxInput == 0 {
		out.MaxInput = defaultMaxInput
	}
	return out
}

// Document is a parsed SDN list. It is immutable once loaded and safe to
// query from multiple goroutines.
type Document struct {
	ns   string
	root *element
}

type element struct {
	name     xml.Name
	attrs    []xml.Attr
	text     string
	children []*element
}

// LoadFile reads and parses the SDN list at path. opts may be nil.
func LoadFile(path string, opts *Options) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("sdnaddr: open %s: %w", path, err)
	}
	defer f.Close()
	return Parse(f, opts)
}

// Parse builds a Document from r. opts may be nil.
//
// The decoder never resolves DTD-declared or external entities, and any
// DOCTYPE declaration is rejected outright, so entity-expansion payloads
// fail to parse instead of expanding. Nesting depth, element count and
// total input size are bounded as well.
func Parse(r io.Reader, opts *Options) (*Document, error) {
	o := opts.withDefaults()

	// If the input exceeds MaxInput the truncation surfaces as an
	// unexpected-EOF parse error.
	dec := xml.NewDecoder(io.LimitReader(r, o.MaxInput))

	var (
		root     *element
		stack    []*element
		elements int
	)

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("sdnaddr: parse xml: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if len(stack) >= o.MaxDepth {
				return nil, fmt.Errorf("sdnaddr: parse xml: element depth exceeds %d", o.MaxDepth)
			}
			elements++
			if elements > o.MaxElements {
				return nil, fmt.Errorf("sdnaddr: parse xml: element count exceeds %d", o.MaxElements)
			}

			el := &element{name: t.Name}
			if len(t.Attr) > 0 {
				el.attrs = make([]xml.Attr, len(t.Attr))
				copy(el.attrs, t.Attr)
			}

			if len(stack) == 0 {
				if root != nil {
					return nil, errors.New("sdnaddr: parse xml: multiple root elements")
				}
				root = el
			} else {
				parent := stack[len(stack)-1]
				parent.children = append(parent.children, el)
			}
			stack = append(stack, el)

		case xml.EndElement:
			stack = stack[:len(stack)-1]

		case xml.CharData:
			if len(stack) > 0 {
				cur := stack[len(stack)-1]
				cur.text += string(t)
			}

		case xml.Directive:
			if isDoctype(t) {
				return nil, errors.New("sdnaddr: parse xml: DOCTYPE is not allowed")
			}
		}
	}

	if root == nil {
		return nil, errors.New("sdnaddr: parse xml: no root element")
	}

	return &Document{ns: o.Namespace, root: root}, nil
}

func isDoctype(d xml.Directive) bool {
	s := strings.TrimSpace(string(d))
	return len(s) >= 7 && strings.EqualFold(s[:7], "DOCTYPE")
}

func (e *element) isNamed(ns, local string) bool {
	return e.name.Local == local && e.name.Space == ns
}

func (e *element) attr(name string) (string, bool) {
	for _, a := range e.attrs {
		if a.Name.Local == name {
			return a.Value, true
		}
	}
	return "", false
}

// child returns the first direct child with the given name, or nil.
func (e *element) child(ns, local string) *element {
	for _, c := range e.children {
		if c.isNamed(ns, local) {
			return c
		}
	}
	return nil
}

// walk visits every descendant of e in document order. The receiver itself
// is not visited.
func (e *element) walk(fn func(*element)) {
	for _, c := range e.children {
		fn(c)
		c.walk(fn)
	}
}
