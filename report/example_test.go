package report_test

import (
	"fmt"
	"os"

	"github.com/katalvlaran/ssassign/assign"
	"github.com/katalvlaran/ssassign/report"
)

func ExampleWriteAssignment() {
	streets := []string{"Elm", "Oak"}
	drivers := []string{"Al", "Bo"}

	res, _, err := assign.Assign(streets, drivers, nil, assign.DefaultOptions())
	if err != nil {
		fmt.Println(err)
		return
	}
	a, _ := report.NewAssignment(streets, drivers, res)
	_ = report.WriteAssignment(os.Stdout, report.FormatTable, a)
	// Output:
	// Destination | Driver | SS
	// ----------- | ------ | --
	// Elm         | Al     | 2
	// Oak         | Bo     | 1
	// Total SS: 3.000
}
