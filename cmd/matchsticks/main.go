// Command matchsticks lists every single-stick move that makes a matchstick
// statement true.
//
//	matchsticks -puzzle "6+4=4"
//	matchsticks -glyphs blank,six,blank,plus,blank,four,blank,equals,blank,four,blank
//	matchsticks -id p1 -puzzle-dir ./puzzles
//	matchsticks -lang de -puzzle "8888888888=8888888888"
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"svw.info/matchsticks/internal/catalog"
	"svw.info/matchsticks/internal/config"
	"svw.info/matchsticks/internal/domain"
	"svw.info/matchsticks/internal/glyphs"
	"svw.info/matchsticks/internal/infrastructure/storage"
	"svw.info/matchsticks/internal/notation"
	"svw.info/matchsticks/internal/solver"
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	fs := flag.NewFlagSet("matchsticks", flag.ContinueOnError)
	fs.SetOutput(stderr)
	text := fs.String("puzzle", "", `statement such as "6+4=4"`)
	names := fs.String("glyphs", "", "comma separated glyph names")
	id := fs.String("id", "", "puzzle id from the library")
	dir := fs.String("puzzle-dir", cfg.PuzzleDir, "puzzle library directory")
	workers := fs.Int("workers", cfg.Workers, "concurrent search workers")
	levelStr := fs.String("log-level", cfg.LogLevel, "debug|info|warn|error")
	lang := fs.String("lang", cfg.Lang, "BCP 47 tag for the summary's number format")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	tag, err := language.Parse(*lang)
	if err != nil {
		fmt.Fprintf(stderr, "invalid -lang %q: %v\n", *lang, err)
		return 2
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: config.Level(*levelStr)}))

	c, err := catalog.New(glyphs.MustStandard())
	if err != nil {
		logger.Error("catalog", "err", err)
		return 1
	}

	p := &domain.Puzzle{Text: *text}
	switch {
	case *id != "":
		p, err = storage.NewFS(*dir).Load(ctx, *id)
		if err != nil {
			logger.Error("load", "id", *id, "err", err)
			return 1
		}
	case *names != "":
		p.Glyphs = strings.Split(*names, ",")
	case *text == "" && fs.NArg() > 0:
		p.Text = strings.Join(fs.Args(), "")
	}
	e, err := notation.FromPuzzle(c, p)
	if err != nil {
		if errors.Is(err, notation.ErrEmpty) {
			fs.Usage()
			return 2
		}
		logger.Error("puzzle", "err", err)
		return 1
	}

	s := &solver.SingleMoveSolver{Catalog: c, Workers: *workers, Logger: logger}
	moves, st, err := s.Solve(ctx, e)
	if err != nil {
		logger.Error("solve", "err", err)
		return 1
	}
	for _, m := range moves {
		fmt.Fprintf(stdout, "%s/%s: %s\n", e.At(m.Source).Display(), e.At(m.Dest).Display(), m.Display)
	}
	pr := message.NewPrinter(tag)
	pr.Fprintf(stdout, "%s: %d move(s) from %d candidates in %v\n", e.DisplayCode(), len(moves), st.Nodes, st.Duration.Round(time.Microsecond))
	return 0
}
