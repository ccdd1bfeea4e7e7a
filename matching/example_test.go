package matching_test

import (
	"fmt"

	"github.com/katalvlaran/flowmatch/matching"
	"github.com/katalvlaran/flowmatch/network"
)

// ExampleMatch assigns three warehouses to two shops. Several assignments
// cost 48 in total; ties resolve by node order, lowest ID first.
func ExampleMatch() {
	sol, avg, err := matching.Match(
		network.Capacities{"A": 1, "B": 1, "C": 4},
		network.Capacities{"D": 3, "E": 3},
		network.Costs{
			{From: "A", To: "D"}: 10, {From: "A", To: "E"}: 15,
			{From: "B", To: "D"}: 3, {From: "B", To: "E"}: 10,
			{From: "C", To: "D"}: 5, {From: "C", To: "E"}: 10,
		},
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, a := range []network.Arc{
		{From: "A", To: "E"}, {From: "B", To: "D"}, {From: "C", To: "D"}, {From: "C", To: "E"},
	} {
		fmt.Printf("%s: %d\n", a, sol[a])
	}
	fmt.Println("moved:", matching.TotalMoved(sol))
	fmt.Println("average cost:", avg)
	// Output:
	// A→E: 1
	// B→D: 1
	// C→D: 2
	// C→E: 2
	// moved: 6
	// average cost: 8.25
}
