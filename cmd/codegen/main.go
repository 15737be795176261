package main

import (
	"context"
	"fmt"
	"go/format"
	"log"
	"os"
	"time"

	"github.com/delaneyj/signalgraph/cmd/codegen/templates"
	"github.com/urfave/cli/v3"
)

const (
	genericParamCountKey = "count"
	outputKey            = "out"
)

func main() {
	cmd := &cli.Command{
		Name:  "generate",
		Usage: "Generate typed lift helpers for observable",
		Flags: []cli.Flag{
			&cli.UintFlag{
				Name:  genericParamCountKey,
				Usage: "Number of generic parameters to generate",
				Value: 8,
			},
			&cli.StringFlag{
				Name:  outputKey,
				Usage: "Output file",
				Value: "observable/lift_gen.go",
			},
		},
		Action: generate,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func generate(ctx context.Context, cmd *cli.Command) error {
	start := time.Now()
	log.Printf("Codegen for observable started !")
	defer func() {
		log.Printf("Codegen for observable finished in %v", time.Since(start))
	}()

	genericParamCount := int(cmd.Uint(genericParamCountKey))
	if genericParamCount < 1 {
		return fmt.Errorf("--%s must be at least 1", genericParamCountKey)
	}
	out := cmd.String(outputKey)
	log.Printf("Generating Lift1..Lift%d into %s", genericParamCount, out)

	contents, err := format.Source([]byte(templates.LiftGen(genericParamCount)))
	if err != nil {
		return fmt.Errorf("formatting generated code: %w", err)
	}
	if err := os.WriteFile(out, contents, 0644); err != nil {
		return err
	}

	return nil
}
