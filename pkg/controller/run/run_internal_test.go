package run

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/selint-dev/selint/pkg/config"
	"github.com/selint-dev/selint/pkg/log"
	"github.com/selint-dev/selint/pkg/sarif"
	"github.com/spf13/afero"
)

func newTestController(fs afero.Fs, param *ParamRun) *Controller {
	if param.Stdout == nil {
		param.Stdout = &bytes.Buffer{}
	}
	if param.Stderr == nil {
		param.Stderr = &bytes.Buffer{}
	}
	return New(fs, config.NewFinder(fs), config.NewReader(fs), param)
}

func TestController_Run(t *testing.T) { //nolint:funlen
	t.Parallel()
	data := []struct {
		name    string
		files   map[string]string
		param   *ParamRun
		wantErr error
	}{
		{
			name: "compliant files pass",
			files: map[string]string{
				"good.py": "driver = webdriver.Chrome(service=service, options=options)\n",
			},
			param: &ParamRun{
				FilePaths: []string{"good.py"},
			},
		},
		{
			name: "a legacy call fails the run",
			files: map[string]string{
				"good.py": "driver = webdriver.Chrome(service=service, options=options)\n",
				"bad.py":  "driver = webdriver.Chrome(chrome_options=options)\n",
			},
			param: &ParamRun{
				FilePaths: []string{"good.py", "bad.py"},
			},
			wantErr: ErrViolationsFound,
		},
		{
			name: "suppressed line passes",
			files: map[string]string{
				"allowed.py": `driver = webdriver.Chrome(executable_path="/p")  # SELENIUM_COMPLIANCE_ALLOW` + "\n",
			},
			param: &ParamRun{
				FilePaths: []string{"allowed.py"},
			},
		},
		{
			name: "an unreadable file fails the run without aborting it",
			files: map[string]string{
				"good.py": "x = 1\n",
			},
			param: &ParamRun{
				FilePaths: []string{"good.py", "missing.py"},
			},
			wantErr: ErrViolationsFound,
		},
		{
			name: "a broken configured pattern is fatal",
			files: map[string]string{
				".selint.yaml": "patterns:\n  - id: broken\n    regexp: (\n    message: m\n",
				"good.py":      "x = 1\n",
			},
			param: &ParamRun{
				FilePaths: []string{"good.py"},
			},
			wantErr: errBuildCatalog,
		},
		{
			name: "configured catalog replaces the default",
			files: map[string]string{
				".selint.yaml": "patterns:\n  - id: no-print\n    regexp: \\bprint\\(\n    message: print is banned\n",
				"app.py":       "driver = webdriver.Chrome(chrome_options=o)\nprint(1)\n",
			},
			param: &ParamRun{
				FilePaths: []string{"app.py"},
				Format:    FormatJSON,
			},
			wantErr: ErrViolationsFound,
		},
	}

	logE := log.New("test")
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			t.Parallel()
			fs := afero.NewMemMapFs()
			for path, content := range d.files {
				if err := afero.WriteFile(fs, path, []byte(content), 0o644); err != nil {
					t.Fatal(err)
				}
			}
			ctrl := newTestController(fs, d.param)
			err := ctrl.Run(context.Background(), logE)
			if d.wantErr == nil {
				if err != nil {
					t.Fatal(err)
				}
				return
			}
			if d.wantErr == errBuildCatalog { //nolint:errorlint
				if err == nil || errors.Is(err, ErrViolationsFound) {
					t.Fatalf("Run() error = %v, want a catalog load failure", err)
				}
				return
			}
			if !errors.Is(err, d.wantErr) {
				t.Fatalf("Run() error = %v, want %v", err, d.wantErr)
			}
		})
	}
}

// errBuildCatalog marks table entries that expect a catalog load failure.
var errBuildCatalog = errors.New("build catalog")

func TestController_Run_configuredCatalogOnlyFlagsItsOwnPatterns(t *testing.T) {
	t.Parallel()
	fs := afero.NewMemMapFs()
	files := map[string]string{
		".selint.yaml": "patterns:\n  - id: no-print\n    regexp: \\bprint\\(\n    message: print is banned\n",
		"app.py":       "driver = webdriver.Chrome(chrome_options=o)\n",
	}
	for path, content := range files {
		if err := afero.WriteFile(fs, path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	ctrl := newTestController(fs, &ParamRun{FilePaths: []string{"app.py"}})
	// chrome_options isn't in the configured catalog, so the run passes.
	if err := ctrl.Run(context.Background(), log.New("test")); err != nil {
		t.Fatal(err)
	}
}

func TestController_Run_outputJSON(t *testing.T) {
	t.Parallel()
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "bad.py", []byte("driver = webdriver.Chrome(chrome_options=o)\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	stdout := &bytes.Buffer{}
	ctrl := newTestController(fs, &ParamRun{
		FilePaths: []string{"bad.py"},
		Format:    FormatJSON,
		Stdout:    stdout,
	})
	err := ctrl.Run(context.Background(), log.New("test"))
	if !errors.Is(err, ErrViolationsFound) {
		t.Fatalf("Run() error = %v, want %v", err, ErrViolationsFound)
	}

	out := struct {
		TotalViolations int  `json:"total_violations"`
		Passed          bool `json:"passed"`
		Violations      []struct {
			FilePath   string `json:"file_path"`
			LineNumber int    `json:"line_number"`
			PatternID  string `json:"pattern_id"`
		} `json:"violations"`
	}{}
	if err := json.Unmarshal(stdout.Bytes(), &out); err != nil {
		t.Fatalf("Run() produced invalid JSON: %v", err)
	}
	if out.Passed {
		t.Error("passed = true, want false")
	}
	if out.TotalViolations != 1 {
		t.Errorf("total_violations = %d, want 1", out.TotalViolations)
	}
	if len(out.Violations) != 1 || out.Violations[0].PatternID != "legacy-chrome-options" {
		t.Errorf("violations = %+v, want one legacy-chrome-options entry", out.Violations)
	}
}

func TestController_Run_outputSARIF(t *testing.T) {
	t.Parallel()
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "bad.py", []byte("driver = webdriver.Chrome(chrome_options=o)\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	stdout := &bytes.Buffer{}
	ctrl := newTestController(fs, &ParamRun{
		FilePaths: []string{"bad.py"},
		Format:    FormatSARIF,
		Stdout:    stdout,
	})
	err := ctrl.Run(context.Background(), log.New("test"))
	if !errors.Is(err, ErrViolationsFound) {
		t.Fatalf("Run() error = %v, want %v", err, ErrViolationsFound)
	}

	var sarifLog sarif.Log
	if err := json.Unmarshal(stdout.Bytes(), &sarifLog); err != nil {
		t.Fatalf("Run() produced invalid SARIF JSON: %v", err)
	}
	if sarifLog.Schema != "https://json.schemastore.org/sarif-2.1.0.json" {
		t.Errorf("schema = %s", sarifLog.Schema)
	}
	if sarifLog.Version != "2.1.0" {
		t.Errorf("version = %s", sarifLog.Version)
	}
	if len(sarifLog.Runs) != 1 {
		t.Fatalf("runs = %d, want 1", len(sarifLog.Runs))
	}
	run := sarifLog.Runs[0]
	if run.Tool.Driver.Name != "selint" {
		t.Errorf("tool name = %s, want selint", run.Tool.Driver.Name)
	}
	if len(run.Results) != 1 {
		t.Fatalf("results = %d, want 1", len(run.Results))
	}
	if run.Results[0].RuleID != "legacy-chrome-options" {
		t.Errorf("rule id = %s, want legacy-chrome-options", run.Results[0].RuleID)
	}
	if len(run.Tool.Driver.Rules) != 1 || run.Tool.Driver.Rules[0].ID != "legacy-chrome-options" {
		t.Errorf("rules = %+v, want one legacy-chrome-options rule", run.Tool.Driver.Rules)
	}
}

func TestController_Run_unknownFormat(t *testing.T) {
	t.Parallel()
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "a.py", []byte("x = 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	ctrl := newTestController(fs, &ParamRun{
		FilePaths: []string{"a.py"},
		Format:    "xml",
	})
	if err := ctrl.Run(context.Background(), log.New("test")); err == nil {
		t.Fatal("Run() must reject an unknown format")
	}
}
