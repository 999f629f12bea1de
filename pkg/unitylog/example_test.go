package unitylog_test

import (
	"fmt"
	"log"

	"github.com/unitylog/unitylog-go/pkg/unitylog"
)

func ExampleParse() {
	text := "Hello World\nUnityEngine.Debug:Log(Object)\nFoo:Bar()\n\n" +
		"Something broke\nUnityEngine.Debug:LogError(Object)\nFoo:Baz()\n\n"

	records, err := unitylog.Parse(text)
	if err != nil {
		log.Fatal(err)
	}

	for _, rec := range records {
		fmt.Printf("[%s] %s | %s\n", rec.Type, rec.Message, rec.Short)
	}
	// Output:
	// [Log] Hello World | Foo:Bar()
	// [Error] Something broke | Foo:Baz()
}

func ExampleParse_options() {
	text := "Hello World\nUnityEngine.Debug:Log(Object)\nFoo:Bar()\nFoo:Baz()\nFoo:Qux()\n\n"

	records, err := unitylog.Parse(text,
		unitylog.WithSummaryLines(2),
		unitylog.WithCollapse(false),
	)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(records[0].Short)
	// Output:
	// Foo:Bar()Foo:Baz()
}

func ExampleEntries() {
	text := "Hello World\nUnityEngine.Debug:Log(Object)\nFoo:Bar()\n\n"

	entries, err := unitylog.Entries(text)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(entries[0].Severity)
	fmt.Println(entries[0].TrimmedCallstack)
	// Output:
	// Log
	// Foo:Bar()
}
