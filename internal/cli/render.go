package cli

import (
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/google/uuid"
	"github.com/puzpuzpuz/xsync/v3"
	"github.com/spf13/cobra"

	"github.com/arloliu/go-epl/epl"
	"github.com/arloliu/go-epl/jobfile"
	"github.com/arloliu/go-epl/logger"
)

type renderResult struct {
	path string
	job  []byte
	err  error
}

func newRenderCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "render FILE...",
		Short: "Render description files into EPL jobs",
		Long: `Render loads each description file (.yaml, .yml or .toml), builds the label and
writes the EPL job to stdout. Element data is transcoded into the code page
selected by the label's character_set element. Jobs are written in argument order.

Nothing is written when any file fails to render.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return renderFiles(cmd.OutOrStdout(), args)
		},
	}
}

// renderFiles renders every file concurrently, each with its own label, and writes
// the jobs to w in the order of paths.
func renderFiles(w io.Writer, paths []string) error {
	results := xsync.NewMapOf[int, renderResult]()

	var wg sync.WaitGroup
	for i, path := range paths {
		wg.Add(1)
		go func() {
			defer wg.Done()
			job, err := renderFile(path)
			results.Store(i, renderResult{path: path, job: job, err: err})
		}()
	}
	wg.Wait()

	var errs []error
	for i := range paths {
		result, _ := results.Load(i)
		if result.err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", result.path, result.err))
		}
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	for i := range paths {
		result, _ := results.Load(i)
		if _, err := w.Write(result.job); err != nil {
			return err
		}
	}

	return nil
}

func renderFile(path string) ([]byte, error) {
	log := logger.With("job_id", uuid.NewString(), "path", path)

	desc, err := jobfile.Load(path)
	if err != nil {
		log.Error("description rejected", "error", err)
		return nil, err
	}

	label, err := desc.Build(epl.WithLogger(log))
	if err != nil {
		log.Error("label rejected", "error", err)
		return nil, err
	}

	job, err := label.Encode()
	if err != nil {
		log.Error("label serialization failed", "error", err)
		return nil, err
	}
	log.Info("label rendered", "elements", len(label.Elements()), "copies", label.Copies())

	return job, nil
}
