package grammar

import (
	"bytes"
	"fmt"
	"sort"
)

// Validate checks the grammar invariants from spec §3.1: every Type(T)
// resolves to a declared non-terminal, every production has at least one
// symbol (already guaranteed by the parser), every non-terminal has at
// least one production (ditto), and — for multi-production non-terminals —
// every production's literal prefix uniquely identifies it among its
// siblings (the discriminator property, checked by CheckDiscriminators).
func Validate(g *Grammar) error {
	names := make(map[string]bool, len(g.NonTerminals))
	for _, nt := range g.NonTerminals {
		names[nt.Name] = true
	}

	for _, nt := range g.NonTerminals {
		for _, production := range nt.Productions {
			for _, field := range production.Fields() {
				if err := checkShapeResolves(nt.Name, production.RHS, field, names); err != nil {
					return err
				}
			}
		}
	}

	return CheckDiscriminators(g)
}

func checkShapeResolves(ntName, rhs string, shape *BoundSymbol, names map[string]bool) error {
	switch shape.Kind {
	case ShapeVec, ShapeRepeated:
		if _, isPrimitive := knownPrimitives[shape.Elem]; !isPrimitive && !names[shape.Elem] {
			return fmt.Errorf("grammar: %s.%s: %q references undeclared non-terminal %q", ntName, rhs, shape.Name, shape.Elem)
		}
	case ShapeSized:
		return checkShapeResolves(ntName, rhs, shape.Inner, names)
	case ShapeType:
		if !names[shape.Type] {
			return fmt.Errorf("grammar: %s.%s: %q references undeclared non-terminal %q", ntName, rhs, shape.Name, shape.Type)
		}
	}
	return nil
}

// CheckDiscriminators verifies that, for every non-terminal with more than
// one production, the productions' literal prefixes are pairwise distinct
// as byte sequences, and that no prefix is a proper prefix of another
// unless the longer one is declared first (spec §4.3's prefix discipline,
// resolving the open question in §9 by rejecting ambiguous declaration
// order rather than silently sorting it away — a malformed grammar should
// fail loudly at generation time).
func CheckDiscriminators(g *Grammar) error {
	for _, nt := range g.NonTerminals {
		if len(nt.Productions) < 2 {
			continue
		}
		prefixes := make([][]byte, len(nt.Productions))
		for i, production := range nt.Productions {
			prefixes[i] = production.LiteralPrefix()
			if len(prefixes[i]) == 0 {
				return fmt.Errorf("grammar: %s.%s: production has no leading literal, cannot discriminate", nt.Name, production.RHS)
			}
		}
		for i := 0; i < len(prefixes); i++ {
			for j := 0; j < len(prefixes); j++ {
				if i == j {
					continue
				}
				if bytes.Equal(prefixes[i], prefixes[j]) {
					return fmt.Errorf("grammar: %s: productions %q and %q have identical literal prefix %x",
						nt.Name, nt.Productions[i].RHS, nt.Productions[j].RHS, prefixes[i])
				}
				if i < j && bytes.HasPrefix(prefixes[j], prefixes[i]) && len(prefixes[j]) > len(prefixes[i]) {
					return fmt.Errorf("grammar: %s: production %q's prefix %x is a proper prefix of %q's %x but is declared first; the longer prefix must come first",
						nt.Name, nt.Productions[i].RHS, prefixes[i], nt.Productions[j].RHS, prefixes[j])
				}
			}
		}
	}
	return nil
}

// dispatchOrder returns production indices sorted by descending literal
// prefix length, stable otherwise. The generator emits the dispatch in
// this order so that, even though CheckDiscriminators already rejects a
// shorter-before-longer declaration, the emitted switch is defensively
// ordered longest-prefix-first (spec §9's open question).
func dispatchOrder(productions []*Production) []int {
	order := make([]int, len(productions))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return len(productions[order[a]].LiteralPrefix()) > len(productions[order[b]].LiteralPrefix())
	})
	return order
}
