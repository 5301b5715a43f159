package generator

import (
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/subdispatch/subdispatch/internal/config"
)

func exampleConfig() *config.Config {
	cfg := &config.Config{
		Command: config.Command{
			Name:  "test",
			Short: "Test program",
			Subcommands: []config.Command{
				{
					Name: "sub",
					Flags: []config.Flag{
						{Name: "profile", Shorthand: "p", Default: "default", Usage: "profile to use"},
					},
					Subcommands: []config.Command{
						{
							Name: "subsub",
							Args: []config.Arg{
								{Name: "TEST_ARG", Required: true, Description: "the argument"},
								{Name: "EXTRA"},
							},
							Flags: []config.Flag{{Name: "token", Required: true}},
						},
					},
				},
				{Name: "othersub"},
			},
		},
		Dispatch: []config.Arm{
			{
				Arm: "sub(sub_matches, profile as profile)",
				Dispatch: []config.Arm{
					{Arm: "subsub(_, TEST_ARG as test_arg) => Record"},
				},
			},
			{Arm: "othersub()", Handler: "Fail"},
		},
	}
	config.ApplyDefaults(cfg)
	return cfg
}

func render(t *testing.T, cfg *config.Config) string {
	t.Helper()
	out, err := Render(cfg, Options{Version: "v-test"})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	return string(out)
}

func TestRender_ParsesAsGo(t *testing.T) {
	src := render(t, exampleConfig())

	f, err := parser.ParseFile(token.NewFileSet(), "dispatch_gen.go", src, parser.ParseComments)
	if err != nil {
		t.Fatalf("generated code does not parse: %v\n%s", err, src)
	}
	if f.Name.Name != "main" {
		t.Errorf("package = %s, want main", f.Name.Name)
	}

	declared := make(map[string]bool)
	for _, d := range f.Decls {
		switch d := d.(type) {
		case *ast.FuncDecl:
			declared[d.Name.Name] = true
		case *ast.GenDecl:
			for _, spec := range d.Specs {
				if ts, ok := spec.(*ast.TypeSpec); ok {
					declared[ts.Name.Name] = true
				}
			}
		}
	}
	for _, want := range []string{"Handlers", "NewCommand", "Dispatch", "Run"} {
		if !declared[want] {
			t.Errorf("generated file does not declare %s", want)
		}
	}
}

func TestRender_Content(t *testing.T) {
	src := render(t, exampleConfig())

	expected := []string{
		"// Code generated by subdispatch v-test from dispatch.yaml. DO NOT EDIT.",
		"Record(subMatches dispatch.Matches, profile string, testArg string) error",
		"Fail() error",
		"func Dispatch(m0 dispatch.Matches, h Handlers) error {",
		"name0, ok0 := m0.SubcommandName()",
		"return dispatch.SubcommandRequired()",
		`m1 := dispatch.MustSubcommand(m0, "sub")`,
		`profile := dispatch.MustValue(m1, "sub", "profile")`,
		"name1, ok1 := m1.SubcommandName()",
		`m2 := dispatch.MustSubcommand(m1, "subsub")`,
		`testArg := dispatch.MustValue(m2, "subsub", "TEST_ARG")`,
		"return h.Record(m1, profile, testArg)",
		"panic(dispatch.Unhandled(name1))",
		"panic(dispatch.Unhandled(name0))",
		"\t\tdispatch.MustSubcommand(m0, \"othersub\")\n",
		"return h.Fail()",
		`matches.DeclareArgs(cmd2, []string{"TEST_ARG"}, []string{"EXTRA"})`,
		`cmd1.PersistentFlags().StringP("profile", "p", "default", "profile to use")`,
		`cmd2.Flags().String("token", "", "")`,
		`cobra.CheckErr(cmd2.MarkFlagRequired("token"))`,
		`"subsub TEST_ARG [EXTRA]",`,
		"SilenceErrors: true,",
		`cmd0.AddCommand(cmd1)`,
		`cmd1.AddCommand(cmd2)`,
		`cmd0.AddCommand(cmd3)`,
		`Long: "Arguments:\n  TEST_ARG\tthe argument",`,
	}
	for _, want := range expected {
		if !strings.Contains(src, want) {
			t.Errorf("generated code missing %q\n%s", want, src)
		}
	}

	if strings.Contains(src, "m3 :=") {
		t.Errorf("othersub should not bind its matches:\n%s", src)
	}
	if n := strings.Count(src, "SilenceErrors"); n != 1 {
		t.Errorf("SilenceErrors set on %d commands, want the root only", n)
	}
}

func TestRender_Deterministic(t *testing.T) {
	first := render(t, exampleConfig())
	for i := 0; i < 3; i++ {
		if got := render(t, exampleConfig()); got != first {
			t.Fatalf("render #%d differs from the first", i+2)
		}
	}
}

func TestRender_RejectsInvalidConfig(t *testing.T) {
	cfg := exampleConfig()
	cfg.Dispatch = cfg.Dispatch[:1]
	_, err := Render(cfg, Options{})
	if err == nil || !strings.Contains(err.Error(), `subcommand "othersub" has no dispatch entry`) {
		t.Errorf("Render() error = %v", err)
	}
}

func TestRender_HandlerOnlyTable(t *testing.T) {
	cfg := &config.Config{
		Package: "cli",
		Command: config.Command{
			Name: "tool",
			Subcommands: []config.Command{
				{Name: "build-all"},
				{Name: "clean", Flags: []config.Flag{{Name: "dir", Default: "."}}},
			},
		},
		Dispatch: []config.Arm{
			{Arm: "build-all => BuildAll"},
			{Arm: "clean(c, dir as dir) => Clean"},
		},
	}
	config.ApplyDefaults(cfg)
	src := render(t, cfg)

	if _, err := parser.ParseFile(token.NewFileSet(), "", src, 0); err != nil {
		t.Fatalf("generated code does not parse: %v\n%s", err, src)
	}
	for _, want := range []string{
		"package cli",
		"BuildAll() error",
		"Clean(c dispatch.Matches, dir string) error",
		`case "build-all":`,
		"return h.Clean(m1, dir)",
		`cmd2.Flags().String("dir", ".", "")`,
	} {
		if !strings.Contains(src, want) {
			t.Errorf("generated code missing %q\n%s", want, src)
		}
	}
}

func TestGenerate_WritesAndStale(t *testing.T) {
	dir := t.TempDir()
	cfg := exampleConfig()
	opts := Options{Dir: dir, Version: "v-test"}

	stale, err := Stale(cfg, opts)
	if err != nil {
		t.Fatal(err)
	}
	if !stale {
		t.Error("missing output should be stale")
	}

	path, err := Generate(cfg, opts)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if path != filepath.Join(dir, "dispatch_gen.go") {
		t.Errorf("path = %s", path)
	}
	if stale, err := Stale(cfg, opts); err != nil || stale {
		t.Errorf("Stale() after Generate = %v, %v", stale, err)
	}

	if err := os.WriteFile(path, []byte("package main\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if stale, err := Stale(cfg, opts); err != nil || !stale {
		t.Errorf("Stale() after edit = %v, %v", stale, err)
	}
}

func TestGenerate_OutputOverride(t *testing.T) {
	dir := t.TempDir()
	path, err := Generate(exampleConfig(), Options{Dir: dir, Output: filepath.Join("gen", "cli_gen.go")})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if path != filepath.Join(dir, "gen", "cli_gen.go") {
		t.Errorf("path = %s", path)
	}
	if _, err := os.Stat(path); err != nil {
		t.Error(err)
	}
}

func TestExecuteTemplate_NoOverwrite(t *testing.T) {
	dir := t.TempDir()
	dest := filepath.Join(dir, "dispatch.yaml")
	data := struct{ ProjectName string }{"demo"}
	if err := ExecuteTemplate("dispatch.yaml.tmpl", dest, data); err != nil {
		t.Fatalf("ExecuteTemplate() error = %v", err)
	}
	if err := ExecuteTemplate("dispatch.yaml.tmpl", dest, data); err == nil {
		t.Error("ExecuteTemplate() overwrote an existing file")
	}

	cfg, err := config.Load(dest)
	if err != nil {
		t.Fatal(err)
	}
	if err := config.Validate(cfg); err != nil {
		t.Errorf("scaffolded dispatch.yaml is invalid: %v", err)
	}
}

func TestExecuteTemplate_MainReportsErrors(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "main.go")
	if err := ExecuteTemplate("main.go.tmpl", dest, struct{ ProjectName string }{"demo"}); err != nil {
		t.Fatalf("ExecuteTemplate() error = %v", err)
	}
	data, err := os.ReadFile(dest)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := parser.ParseFile(token.NewFileSet(), dest, data, 0); err != nil {
		t.Fatalf("scaffolded main.go does not parse: %v", err)
	}
	if !strings.Contains(string(data), `fmt.Fprintf(os.Stderr, "Error: %v\n", err)`) {
		t.Errorf("scaffolded main.go exits without printing the error:\n%s", data)
	}
}
