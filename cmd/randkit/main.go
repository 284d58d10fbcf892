/*randkit emits pseudo-random, normal, or low-discrepancy sequences as
text, one sample per line, tab-separated for multi-dimensional output.

Parameters come from flags, from a [randkit] config file, or both; flags
win when both are given. Example:

	randkit -generator twister -seed 1337 -count 10000
	randkit -config mc.config -output sobol -dim 3
*/
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/quantforge/randkit/dist"
	"github.com/quantforge/randkit/parse"
	"github.com/quantforge/randkit/quasi"
	"github.com/quantforge/randkit/rand"
	"github.com/quantforge/randkit/stream"
)

type config struct {
	Generator string
	Output    string
	Seed      int64
	Count     int64
	Dim       int64
}

func configVars(cfg *config) *parse.ConfigVars {
	vars := parse.NewConfigVars("randkit")
	vars.String(&cfg.Generator, "Generator", "twister")
	vars.String(&cfg.Output, "Output", "uniform")
	vars.Int(&cfg.Seed, "Seed", 0)
	vars.Int(&cfg.Count, "Count", 10)
	vars.Int(&cfg.Dim, "Dim", 1)
	return vars
}

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().Timestamp().Logger()

	cfgPath := flag.String("config", "", "path to a [randkit] config file")
	generator := flag.String("generator", "", "pseudo-random generator name")
	output := flag.String("output", "",
		"uniform | normal | sobol | halton | hypercube")
	seed := flag.Int64("seed", -1, "generator seed")
	count := flag.Int64("count", -1, "number of samples")
	dim := flag.Int64("dim", -1, "dimension of quasi-random points")
	flag.Parse()

	cfg := &config{}
	vars := configVars(cfg)
	if *cfgPath != "" {
		if err := parse.ReadConfig(*cfgPath, vars); err != nil {
			log.Error().Err(err).Msg("could not read config")
			os.Exit(1)
		}
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "generator":
			cfg.Generator = *generator
		case "output":
			cfg.Output = *output
		case "seed":
			cfg.Seed = *seed
		case "count":
			cfg.Count = *count
		case "dim":
			cfg.Dim = *dim
		}
	})

	if cfg.Count < 1 {
		log.Error().Int64("count", cfg.Count).Msg("count must be positive")
		os.Exit(1)
	}

	log.Info().
		Str("generator", cfg.Generator).
		Str("output", cfg.Output).
		Int64("seed", cfg.Seed).
		Int64("count", cfg.Count).
		Int64("dim", cfg.Dim).
		Msg("generating")

	w := bufio.NewWriter(os.Stdout)
	err := run(w, cfg)
	if ferr := w.Flush(); err == nil {
		err = ferr
	}
	if err != nil {
		log.Error().Err(err).Msg("generation failed")
		os.Exit(1)
	}
}

func run(w io.Writer, cfg *config) error {
	n := int(cfg.Count)
	d := int(cfg.Dim)

	switch cfg.Output {
	case "uniform", "normal":
		st, err := rand.Named(cfg.Generator, uint64(cfg.Seed))
		if err != nil {
			return err
		}
		src := stream.New(st)
		if cfg.Output == "normal" {
			zs, err := dist.Normals(src, n, 0)
			if err != nil {
				return err
			}
			return writeScalars(w, zs)
		}
		return writeScalars(w, src.Take(n))

	case "sobol":
		seq, err := quasi.NewSobol(d)
		if err != nil {
			return err
		}
		return writePoints(w, n, seq.NextAt, d)

	case "halton":
		seq, err := quasi.NewHalton(d)
		if err != nil {
			return err
		}
		return writePoints(w, n, seq.NextAt, d)

	case "hypercube":
		st, err := rand.Named(cfg.Generator, uint64(cfg.Seed))
		if err != nil {
			return err
		}
		points, err := quasi.Hypercube(n, d, stream.New(st))
		if err != nil {
			return err
		}
		for _, p := range points {
			if err := writeRow(w, p); err != nil {
				return err
			}
		}
		return nil
	}
	return fmt.Errorf("unknown output kind %q", cfg.Output)
}

func writeScalars(w io.Writer, xs []float64) error {
	for _, x := range xs {
		if _, err := fmt.Fprintf(w, "%.17g\n", x); err != nil {
			return err
		}
	}
	return nil
}

func writePoints(w io.Writer, n int, next func([]float64), dim int) error {
	p := make([]float64, dim)
	for i := 0; i < n; i++ {
		next(p)
		if err := writeRow(w, p); err != nil {
			return err
		}
	}
	return nil
}

func writeRow(w io.Writer, p []float64) error {
	for i, x := range p {
		sep := "\t"
		if i == len(p)-1 {
			sep = "\n"
		}
		if _, err := fmt.Fprintf(w, "%.17g%s", x, sep); err != nil {
			return err
		}
	}
	return nil
}
