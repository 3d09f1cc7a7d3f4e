package ui

import (
	"fmt"

	"github.com/fatih/color"

	"minitest/unit"
)

// PrintEntityList prints the registered entities as a tree. The overview
// shows each top-level entity with its case count; with expand set every
// group and case is listed underneath.
func PrintEntityList(entities []unit.Entity, expand bool) {
	total := 0
	for _, e := range entities {
		total += e.Stats().Total
	}
	color.Green("Found %d case(s):\n", total)

	for i, e := range entities {
		last := i == len(entities)-1
		printEntity(e, last, expand)

		// Add spacing between entities (except for the last one)
		if expand && !last {
			fmt.Println()
		}
	}
}

func printEntity(e unit.Entity, last, expand bool) {
	connector := "├── "
	childPrefix := "│   "
	if last {
		connector = "└── "
		childPrefix = "    "
	}

	switch v := e.(type) {
	case *unit.Module:
		color.Cyan("%s%s %s", connector, v.Name(), countLabel(v.Stats().Total))
		if expand {
			groups := v.Groups()
			for i, g := range groups {
				printGroup(g, childPrefix, i == len(groups)-1)
			}
		}
	case *unit.Group:
		color.Cyan("%s%s %s", connector, v.Name(), countLabel(v.Stats().Total))
		if expand {
			printCases(v.Cases(), childPrefix)
		}
	case *unit.Case:
		fmt.Printf("%s%s\n", connector, color.YellowString(v.Name()))
	}
}

func printGroup(g *unit.Group, prefix string, last bool) {
	connector := prefix + "├── "
	childPrefix := prefix + "│   "
	if last {
		connector = prefix + "└── "
		childPrefix = prefix + "    "
	}

	color.Cyan("%s%s %s", connector, g.Name(), countLabel(g.Stats().Total))
	printCases(g.Cases(), childPrefix)
}

func printCases(cases []*unit.Case, prefix string) {
	for i, c := range cases {
		connector := prefix + "├── "
		if i == len(cases)-1 {
			connector = prefix + "└── "
		}
		fmt.Printf("%s%s\n", connector, color.YellowString(c.Name()))
	}
}

func countLabel(n int) string {
	return color.WhiteString("(%d case(s))", n)
}
