package match

import (
	"fmt"
	"reflect"

	tp "github.com/xlab/treeprint"
)

// Dump renders the cases of m as a tree, for debugging.
func (m Expression[In, Out]) Dump() string {
	return dump(fmt.Sprintf("Expression[%v, %v]", typeName[In](), typeName[Out]()),
		m.fallthroughByDefault, descriptions(m.cases, func(c Case[In, Out]) string { return c.description }))
}

// Dump renders the cases of s as a tree, for debugging.
func (s Statement[In]) Dump() string {
	return dump(fmt.Sprintf("Statement[%v]", typeName[In]()),
		s.fallthroughByDefault, descriptions(s.cases, func(a Action[In]) string { return a.description }))
}

// Dump renders the cases of m as a tree, for debugging.
func (m AsyncExpression[In, Out]) Dump() string {
	return dump(fmt.Sprintf("AsyncExpression[%v, %v]", typeName[In](), typeName[Out]()),
		m.fallthroughByDefault, descriptions(m.cases, func(c AsyncCase[In, Out]) string { return c.description }))
}

// Dump renders the cases of s as a tree, for debugging.
func (s AsyncStatement[In]) Dump() string {
	return dump(fmt.Sprintf("AsyncStatement[%v]", typeName[In]()),
		s.fallthroughByDefault, descriptions(s.cases, func(a AsyncAction[In]) string { return a.description }))
}

type caseInfo struct {
	description  string
	fallsThrough bool
}

func descriptions[C any](entries []entry[C], describe func(C) string) []caseInfo {
	infos := make([]caseInfo, len(entries))
	for i, e := range entries {
		infos[i] = caseInfo{description: describe(e.c), fallsThrough: e.fallsThrough}
	}
	return infos
}

func dump(title string, fallthroughByDefault bool, cases []caseInfo) string {
	printer := tp.New()
	printer.SetValue(fmt.Sprintf("%s (fallthrough by default = %v)", title, fallthroughByDefault))
	for i, c := range cases {
		d := c.description
		if d == "" {
			d = "<pattern>"
		}
		branch := printer.AddBranch(fmt.Sprintf("case %d: %s", i, d))
		branch.AddNode(fmt.Sprintf("falls through = %v", c.fallsThrough))
	}
	return printer.String()
}

func typeName[T any]() string {
	return reflect.TypeOf((*T)(nil)).Elem().String()
}
