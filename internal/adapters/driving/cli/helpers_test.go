package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"golang.org/x/oauth2"

	"github.com/custodia-labs/payslip-drive/internal/adapters/driven/auth"
	"github.com/custodia-labs/payslip-drive/internal/core/domain"
)

// fakeSplitter records the documents it was asked to split.
type fakeSplitter struct {
	report *domain.RunReport
	err    error
	paths  []string
}

func (f *fakeSplitter) Split(_ context.Context, path string) (*domain.RunReport, error) {
	f.paths = append(f.paths, path)
	if f.report != nil {
		return f.report, f.err
	}
	return &domain.RunReport{Kind: domain.RunKindSplit, Source: path, Success: f.err == nil}, f.err
}

type fakeUploader struct {
	pending    []string
	pendingErr error
	report     *domain.RunReport
	err        error
	uploads    int
}

func (f *fakeUploader) Pending() ([]string, error) {
	return f.pending, f.pendingErr
}

func (f *fakeUploader) Upload(context.Context) (*domain.RunReport, error) {
	f.uploads++
	if f.report != nil {
		return f.report, f.err
	}
	return &domain.RunReport{
		Kind:      domain.RunKindUpload,
		Success:   f.err == nil,
		Succeeded: len(f.pending),
	}, f.err
}

type fakeHistory struct {
	runs      []domain.RunRecord
	err       error
	lastLimit int
}

func (f *fakeHistory) List(_ context.Context, limit int) ([]domain.RunRecord, error) {
	f.lastLimit = limit
	return f.runs, f.err
}

func (f *fakeHistory) Export(_ context.Context, w io.Writer, limit int) error {
	f.lastLimit = limit
	if f.err != nil {
		return f.err
	}
	_, err := fmt.Fprintf(w, "%d runs", len(f.runs))
	return err
}

type fakeAuth struct {
	status auth.Status
	err    error
	logins int
}

func (f *fakeAuth) Login(context.Context) (*oauth2.Token, error) {
	f.logins++
	if f.err != nil {
		return nil, f.err
	}
	return &oauth2.Token{AccessToken: "t"}, nil
}

func (f *fakeAuth) Status() (auth.Status, error) {
	return f.status, f.err
}

type fakeConfig struct {
	values  map[string]any
	saved   bool
	saveErr error
}

func newFakeConfig() *fakeConfig {
	return &fakeConfig{values: make(map[string]any)}
}

func (f *fakeConfig) Keys() []string {
	keys := make([]string, 0, len(f.values))
	for k := range f.values {
		keys = append(keys, k)
	}
	return keys
}

func (f *fakeConfig) Get(key string) (any, bool) {
	v, ok := f.values[key]
	return v, ok
}

func (f *fakeConfig) Set(key string, value any) error {
	f.values[key] = value
	return nil
}

func (f *fakeConfig) Save() error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saved = true
	return nil
}

func (f *fakeConfig) Path() string {
	return "/home/test/.payslip/config.toml"
}

var errBoom = errors.New("boom")

// install sets svc as the command services and restores a clean state
// when the test ends.
func install(t *testing.T, svc *Services) {
	t.Helper()
	if svc.Settings == (domain.Settings{}) {
		svc.Settings = domain.DefaultSettings()
	}
	SetServices(svc)
	t.Cleanup(reset)
}

func reset() {
	SetServices(&Services{Settings: domain.DefaultSettings()})
	bootstrap = nil
	verbose = false
	configDir = ""
	uploadYes = false
	uploadDryRun = false
	historyLimit = 20
	historyExport = ""
	watchInitial = false
}

// execute runs the root command with args and returns everything printed.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	return executeContext(t, context.Background(), stdin, args...)
}

func executeContext(t *testing.T, ctx context.Context, stdin string, args ...string) (string, error) {
	t.Helper()
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
	}()

	err := rootCmd.ExecuteContext(ctx)
	return buf.String(), err
}
