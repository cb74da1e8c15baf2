// SPDX-License-Identifier: MIT

// Command lvnet trains a feed-forward digit classifier and reports its
// success rate on a held-out set.
//
// Usage:
//
//	lvnet -train mnist_train.txt -test mnist_test.txt
//	lvnet -format idx -train ./mnist -test ./mnist -epochs 3 -seed 7
//
// With -format csv, -train and -test name files of label,p0,...,p783 lines.
// With -format idx, they name directories holding the standard MNIST file
// names, plain or gzip-compressed. SIGINT stops training between steps.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"time"

	"github.com/katalvlaran/lvnet/dataset"
	"github.com/katalvlaran/lvnet/nn"
	"github.com/katalvlaran/lvnet/trainer"
)

const (
	formatCSV = "csv"
	formatIDX = "idx"
)

var errUsage = errors.New("usage")

// config is the validated command line.
type config struct {
	trainPath string
	testPath  string
	format    string
	header    bool
	hidden    []int
	rate      float64
	batch     int
	epochs    int
	seed      int64
	limit     int
	shuffle   bool
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("lvnet: ")

	cfg, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err = run(ctx, cfg, log.Default(), os.Stdout); err != nil {
		log.Fatal(err)
	}
}

// parseFlags turns args into a validated config.
func parseFlags(args []string, errOut io.Writer) (config, error) {
	var (
		cfg    config
		hidden string
	)
	fs := flag.NewFlagSet("lvnet", flag.ContinueOnError)
	fs.SetOutput(errOut)
	fs.StringVar(&cfg.trainPath, "train", "mnist_train.txt", "training set (csv file or idx directory)")
	fs.StringVar(&cfg.testPath, "test", "mnist_test.txt", "test set (csv file or idx directory)")
	fs.StringVar(&cfg.format, "format", formatCSV, "input format: csv or idx")
	fs.BoolVar(&cfg.header, "header", false, "csv files start with a header line")
	fs.StringVar(&hidden, "hidden", "16,16", "comma-separated hidden layer sizes")
	fs.Float64Var(&cfg.rate, "lr", nn.DefaultLearningRate, "learning rate")
	fs.IntVar(&cfg.batch, "batch", trainer.DefaultBatchSize, "mini-batch size")
	fs.IntVar(&cfg.epochs, "epochs", trainer.DefaultEpochs, "passes over the training set")
	fs.Int64Var(&cfg.seed, "seed", 0, "random seed (0 = time based)")
	fs.IntVar(&cfg.limit, "limit", 0, "max examples per set (0 = all)")
	fs.BoolVar(&cfg.shuffle, "shuffle", false, "reshuffle the training set every epoch")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	var err error
	if cfg.hidden, err = parseSizes(hidden); err != nil {
		return cfg, err
	}

	return cfg, cfg.validate()
}

// parseSizes parses "16,16" into layer sizes; "" means no hidden layer.
func parseSizes(s string) ([]int, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	var sizes []int
	for _, part := range strings.Split(s, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("%w: -hidden: bad layer size %q", errUsage, part)
		}
		sizes = append(sizes, n)
	}

	return sizes, nil
}

func (c config) validate() error {
	switch {
	case c.format != formatCSV && c.format != formatIDX:
		return fmt.Errorf("%w: -format must be %s or %s, got %q", errUsage, formatCSV, formatIDX, c.format)
	case c.trainPath == "" || c.testPath == "":
		return fmt.Errorf("%w: -train and -test are required", errUsage)
	case c.rate <= 0 || math.IsNaN(c.rate) || math.IsInf(c.rate, 0):
		return fmt.Errorf("%w: -lr must be positive and finite", errUsage)
	case c.batch <= 0:
		return fmt.Errorf("%w: -batch must be positive", errUsage)
	case c.epochs <= 0:
		return fmt.Errorf("%w: -epochs must be positive", errUsage)
	case c.limit < 0:
		return fmt.Errorf("%w: -limit must not be negative", errUsage)
	}

	return nil
}

// load reads one set in the configured format.
func (c config) load(path string, train bool) (*dataset.Set, error) {
	opts := []dataset.Option{dataset.WithLimit(c.limit)}
	if c.format == formatIDX {
		return dataset.LoadIDXDir(path, train, opts...)
	}
	if c.header {
		opts = append(opts, dataset.WithHeader())
	}

	return dataset.LoadCSVFile(path, opts...)
}

// run loads both sets, trains, and prints the success rate to out.
func run(ctx context.Context, cfg config, logger *log.Logger, out io.Writer) error {
	train, err := cfg.load(cfg.trainPath, true)
	if err != nil {
		return err
	}
	test, err := cfg.load(cfg.testPath, false)
	if err != nil {
		return err
	}
	logger.Printf("loaded %d training and %d test examples of %d features", train.Len(), test.Len(), train.Features())

	seed := cfg.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	sizes := append(append([]int(nil), cfg.hidden...), train.Classes)
	net, err := nn.New(train.Features(), sizes, nn.WithSeed(seed), nn.WithLearningRate(cfg.rate))
	if err != nil {
		return err
	}
	logger.Printf("network %d→%v, rate %g, seed %d", train.Features(), sizes, cfg.rate, seed)

	tc := trainer.Config{Epochs: cfg.epochs, BatchSize: cfg.batch, Shuffle: cfg.shuffle, Seed: seed, Logger: logger}
	stats, err := trainer.Run(ctx, net, train, tc)
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			return err
		}
		logger.Printf("interrupted after %d steps; evaluating the partial model", stats.Steps)
	}

	rep, err := trainer.Evaluate(net, test)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, rep)

	return err
}
