package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"runtime/pprof"
	"time"

	"github.com/delaneyj/signalgraph/observable"
	"github.com/delaneyj/signalgraph/poll"
	"github.com/jamiealquiza/tachymeter"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli/v3"
)

const (
	itersKey = "iters"
	maxKey   = "max"
	pgoKey   = "pgo"
)

func main() {
	cmd := &cli.Command{
		Name:  "benchmark",
		Usage: "Measure propagation through publisher/subscriber graphs",
		Flags: []cli.Flag{
			&cli.UintFlag{
				Name:  itersKey,
				Usage: "Updates per graph",
				Value: 100,
			},
			&cli.UintFlag{
				Name:  maxKey,
				Usage: "Largest width and height, sizes grow by powers of ten",
				Value: 1_000,
			},
			&cli.StringFlag{
				Name:  pgoKey,
				Usage: "Write a CPU profile to this file",
				Value: "default.pgo",
			},
		},
		Action: run,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	if path := cmd.String(pgoKey); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			return err
		}
		defer pprof.StopCPUProfile()
	}

	iters := int(cmd.Uint(itersKey))
	sizes := powersOfTen(int(cmd.Uint(maxKey)))

	log.Printf("warming up")
	benchmarkPropagate(ctx, sizes, sizes, iters, false)

	benchmarkPropagate(ctx, sizes, sizes, iters, true)
	benchmarkDynamic(sizes, iters, true)
	return nil
}

func powersOfTen(limit int) []int {
	sizes := []int{1}
	for n := 10; n <= limit; n *= 10 {
		sizes = append(sizes, n)
	}
	return sizes
}

func addOne(oldValue int) int {
	return oldValue + 1
}

func sum(args ...any) int {
	total := 0
	for _, arg := range args {
		total += arg.(int)
	}
	return total
}

func newTable(title string) table.Writer {
	tbl := table.NewWriter()
	tbl.SetTitle(title)
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"benchmark", "avg", "min", "p75", "p99", "max"})
	return tbl
}

func appendCalc(tbl table.Writer, name string, tach *tachymeter.Tachymeter) {
	calc := tach.Calc()
	tbl.AppendRows([]table.Row{
		{
			name,
			calc.Time.Avg,
			calc.Time.Min,
			calc.Time.P75,
			calc.Time.P99,
			calc.Time.Max,
		},
	})
}

// w chains of h mapped subscribers hang off one publisher, the leaves are
// forced by a poll driver tick after every update.
func benchmarkPropagate(ctx context.Context, ww, hh []int, iters int, shouldRender bool) {
	tbl := newTable("Propagate")
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	for _, w := range ww {
		for _, h := range hh {
			tach := tachymeter.New(&tachymeter.Config{Size: iters})

			src := observable.NewPublisher(1)
			drv := poll.New(poll.WithLogger(logger))
			for i := 0; i < w; i++ {
				var last observable.Source[int] = src
				var leaf *observable.Subscriber[int]
				for j := 0; j < h; j++ {
					leaf = observable.Map(last, addOne)
					last = leaf
				}
				drv.Add(leaf)
			}

			for i := 0; i < iters; i++ {
				start := time.Now()
				src.Set(src.Get() + 1)
				drv.Tick(ctx)
				tach.AddTime(time.Since(start))
			}

			appendCalc(tbl, fmt.Sprintf("propagate: %d * %d", w, h), tach)
		}
	}

	if shouldRender {
		tbl.Render()
	}
}

// One dynamic subscriber sums a sliding window over n publishers; every
// update moves the window and rebinds its arguments.
func benchmarkDynamic(nn []int, iters int, shouldRender bool) {
	tbl := newTable("Dynamic arguments")

	for _, n := range nn {
		tach := tachymeter.New(&tachymeter.Config{Size: iters})

		members := make([]any, n)
		for i := range members {
			members[i] = observable.NewPublisher(i)
		}
		window := n/2 + 1
		list := observable.NewPublisher(members[:window])
		total := observable.NewDynamicSubscriber(list, sum)
		total.Get()

		for i := 0; i < iters; i++ {
			offset := i % (n - window + 1)
			start := time.Now()
			list.Set(members[offset : offset+window])
			total.Get()
			tach.AddTime(time.Since(start))
		}

		appendCalc(tbl, fmt.Sprintf("rebind: %d of %d", window, n), tach)
	}

	if shouldRender {
		tbl.Render()
	}
}
