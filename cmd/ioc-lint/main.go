// Command ioc-lint builds a bundled demo registration set and resolves
// every registered service type through it, the way the source's
// doffy-validate walked a codebase's AST looking for encapsulation
// violations — except here there is no AST to parse: a registration set
// is either resolvable or it isn't, so validation means exercising
// Container and DependencyGraph directly rather than scanning source
// text for call patterns.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/dangvanduc1999/ioc-core/ioc"
)

var (
	mode        = flag.String("mode", "warn", `Validation mode: "warn" (default) or "strict"`)
	optionsPath = flag.String("options", "", "Path to a YAML ContainerOptions file (optional)")
	help        = flag.Bool("help", false, "Show help")
)

func printUsage() {
	fmt.Fprintf(os.Stderr, "ioc-lint: validate a registration set against the resolver engine\n\n")
	fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nExamples:\n")
	fmt.Fprintf(os.Stderr, "  %s\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "  %s -mode=strict -options=container.yaml\n", os.Args[0])
}

func main() {
	flag.Usage = printUsage
	flag.Parse()

	if *help {
		printUsage()
		return
	}
	if *mode != "warn" && *mode != "strict" {
		fmt.Fprintf(os.Stderr, "Error: invalid mode %q, must be \"warn\" or \"strict\"\n\n", *mode)
		printUsage()
		os.Exit(1)
	}

	opts := ioc.ContainerOptions{}
	if *optionsPath != "" {
		loaded, err := ioc.LoadContainerOptions(*optionsPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		opts = loaded
	}

	violations, err := lintDemoRegistrationSet(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building registration set: %v\n", err)
		os.Exit(1)
	}

	if len(violations) == 0 {
		fmt.Println("✓ every registered service type resolved cleanly")
		return
	}

	fmt.Printf("Found %d unresolvable service type(s):\n\n", len(violations))
	for _, v := range violations {
		fmt.Printf("  %s: %v\n", v.serviceType, v.err)
	}

	if *mode == "strict" {
		os.Exit(1)
	}
}

type violation struct {
	serviceType string
	err         error
}

// lintDemoRegistrationSet registers a small bundled service graph, then
// attempts to resolve every service type
// it registered, reporting any failure instead of letting it crash a
// real application at first use.
func lintDemoRegistrationSet(opts ioc.ContainerOptions) ([]violation, error) {
	container, provider := ioc.Bootstrap(ioc.WithOptions(opts))
	defer container.Dispose(context.Background())

	// A minimal, self-contained graph: one Singleton with no
	// dependencies. Real usage would point lintDemoRegistrationSet at
	// the caller's own registration function instead of a bundled demo
	// set.
	type greeterImpl struct{ prefix string }
	newGreeter := func() *greeterImpl { return &greeterImpl{prefix: "hello"} }

	serviceTypes := []string{"greeter"}

	if _, err := ioc.RegisterSingleton[*greeterImpl, *greeterImpl](container, ioc.WithConstructors(newGreeter)); err != nil {
		return nil, err
	}

	var violations []violation
	scope := provider.CreateScope()
	defer scope.Dispose(context.Background())

	if _, err := ioc.Resolve[*greeterImpl](scope); err != nil {
		violations = append(violations, violation{serviceType: serviceTypes[0], err: err})
	}

	return violations, nil
}
