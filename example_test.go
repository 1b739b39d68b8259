package snapshot_test

import (
	"context"
	"fmt"
	"log"

	"github.com/tabula-historica/snapshot"
	"github.com/tabula-historica/snapshot/pkg/adapters/memory"
)

// ExampleNew_memory exports a project held in memory, which is useful for tests
// and for embedding the exporter in another tool.
func ExampleNew_memory() {
	project := memory.NewStoreWith("project", []byte(
		`{"references": [1,2], "historyManager": {"x":1}, "name": "demo", "layers": [{"id":1}]}`,
	))
	published := memory.NewStore("static")

	report, err := snapshot.New(project, published).Export(context.Background())
	if err != nil {
		log.Fatal(err)
	}

	data, _ := published.Load(context.Background())
	fmt.Println(string(data))
	fmt.Println(report.Removed)
	// Output:
	// {"name":"demo","layers":[{"id":1}]}
	// [references historyManager]
}

// ExampleWithIndent shows pretty-printed output.
func ExampleWithIndent() {
	project := memory.NewStoreWith("project", []byte(`{"references":[],"historyManager":{},"name":"demo"}`))
	published := memory.NewStore("static")

	exp := snapshot.New(project, published, snapshot.WithIndent("  "))
	if _, err := exp.Export(context.Background()); err != nil {
		log.Fatal(err)
	}

	data, _ := published.Load(context.Background())
	fmt.Print(string(data))
	// Output:
	// {
	//   "name": "demo"
	// }
}
