package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/fin-tools/report-atlas/pkg/services/upload"
)

type UploadCmd struct {
	profile string
	commit  bool
	loader  RegistryLoader
}

func NewUploadCmd(loader RegistryLoader) *cobra.Command {
	uc := &UploadCmd{loader: loader}
	cmd := &cobra.Command{
		Use:   "upload [files...]",
		Short: "Upload PDF reports for preview, optionally committing them",
		Args:  cobra.MinimumNArgs(1),
		RunE:  uc.run,
	}

	cmd.Flags().StringVar(&uc.profile, "profile", "", "Endpoint profile to use")
	cmd.Flags().BoolVar(&uc.commit, "commit", false, "Commit the batch after uploading")

	_ = cmd.MarkFlagRequired("profile")

	return cmd
}

func (uc *UploadCmd) run(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Minute)
	defer cancel()

	reportClient, err := newClient(ctx, uc.loader, uc.profile)
	if err != nil {
		return err
	}

	manager := upload.NewManager(reportClient)
	manager.Open()

	out := cmd.OutOrStdout()

	var files []upload.File
	var closers []*os.File
	defer func() {
		for _, f := range closers {
			_ = f.Close()
		}
	}()

	for _, path := range args {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("failed to open %q: %w", path, err)
		}
		closers = append(closers, f)
		files = append(files, upload.File{Name: filepath.Base(path), Reader: f})
	}

	failed := 0
	for _, result := range manager.HandleFiles(ctx, files) {
		if result.Err != nil {
			failed++
			fmt.Fprintf(out, "FAILED  %s: %v\n", result.Name, result.Err)
			continue
		}
		fmt.Fprintf(out, "OK      %s (id: %s)\n", result.Name, result.Entry.ID)
	}

	if !uc.commit {
		session := manager.Session()
		fmt.Fprintf(out, "\nUploaded %d of %d file(s) into session %s. Re-run with --commit to commit.\n",
			len(session.Entries), len(files), session.ID)
		return nil
	}

	outcome, err := manager.Commit(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "\nCommitted: %d moved", outcome.Result.Moved)
	if len(outcome.Result.Missing) > 0 {
		fmt.Fprintf(out, ", missing: %s", strings.Join(outcome.Result.Missing, ", "))
	}
	fmt.Fprintln(out)

	if outcome.Target == upload.NavigateFile {
		fmt.Fprintf(out, "Next: open file %s\n", outcome.FileID)
	} else {
		fmt.Fprintln(out, "Next: open the upload history")
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d file(s) failed to upload", failed, len(files))
	}

	return nil
}
