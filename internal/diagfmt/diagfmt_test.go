package diagfmt_test

import (
	"encoding/json"
	"strings"
	"testing"

	"sysdl/internal/diag"
	"sysdl/internal/diagfmt"
	"sysdl/internal/driver"
	"sysdl/internal/source"
)

func TestFormatTokensPretty(t *testing.T) {
	result := driver.TokenizeString("test.sysdl", "part Engine;")
	var sb strings.Builder
	if err := diagfmt.FormatTokensPretty(&sb, result.Tokens, result.FileSet); err != nil {
		t.Fatal(err)
	}
	out := sb.String()
	for _, want := range []string{"Keyword", `"part"`, "Ident", `"Engine"`, "Punct", "EOF", "at 1:1"} {
		if !strings.Contains(out, want) {
			t.Errorf("pretty output missing %q:\n%s", want, out)
		}
	}
}

func TestFormatTokensJSON(t *testing.T) {
	result := driver.TokenizeString("test.sysdl", "attribute m = 2.5;")
	var sb strings.Builder
	if err := diagfmt.FormatTokensJSON(&sb, result.Tokens); err != nil {
		t.Fatal(err)
	}
	var decoded []map[string]any
	if err := json.Unmarshal([]byte(sb.String()), &decoded); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if decoded[0]["kind"] != "Keyword" || decoded[0]["text"] != "attribute" {
		t.Errorf("first token: %v", decoded[0])
	}
	// числовое значение сериализуется отдельно от текста
	foundNum := false
	for _, tok := range decoded {
		if tok["kind"] == "Number" {
			foundNum = tok["num"] == 2.5
		}
	}
	if !foundNum {
		t.Error("number token must carry num field")
	}
}

func TestFormatASTJSONOmitsAbsentProperties(t *testing.T) {
	result := driver.ParseString("test.sysdl", "package P { part E; port q; }", 100)
	var sb strings.Builder
	if err := diagfmt.FormatASTJSON(&sb, result.Builder, result.Root); err != nil {
		t.Fatal(err)
	}

	var root struct {
		Type     string `json:"type"`
		Children []struct {
			Type       string         `json:"type"`
			Properties map[string]any `json:"properties"`
			Children   []struct {
				Type       string         `json:"type"`
				Properties map[string]any `json:"properties"`
			} `json:"children"`
		} `json:"children"`
	}
	if err := json.Unmarshal([]byte(sb.String()), &root); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if root.Type != "root" || len(root.Children) != 1 {
		t.Fatalf("unexpected shape: %s", sb.String())
	}
	pkg := root.Children[0]
	if pkg.Properties["name"] != "P" {
		t.Errorf("package name: %v", pkg.Properties)
	}
	port := pkg.Children[1]
	if _, present := port.Properties["type"]; present {
		t.Error("absent type annotation must not be serialized")
	}
}

func TestFormatASTPretty(t *testing.T) {
	result := driver.ParseString("test.sysdl", "package P { part E; }", 100)
	var sb strings.Builder
	if err := diagfmt.FormatASTPretty(&sb, result.Builder, result.Root); err != nil {
		t.Fatal(err)
	}
	out := sb.String()
	if !strings.Contains(out, `package [name="P"]`) {
		t.Errorf("pretty output missing package line:\n%s", out)
	}
	if !strings.Contains(out, `  part [name="E"]`) {
		t.Errorf("pretty output missing indented part line:\n%s", out)
	}
}

func TestFormatASTTree(t *testing.T) {
	result := driver.ParseString("test.sysdl", "package P { part E; port q; }", 100)
	var sb strings.Builder
	if err := diagfmt.FormatASTTree(&sb, result.Builder, result.Root); err != nil {
		t.Fatal(err)
	}
	out := sb.String()
	if !strings.Contains(out, "└── package") {
		t.Errorf("tree output missing package connector:\n%s", out)
	}
	if !strings.Contains(out, "├── part") {
		t.Errorf("tree output missing part connector:\n%s", out)
	}
}

func TestPrettyDiagnostics(t *testing.T) {
	result := driver.ParseString("broken.sysdl", "part Engine {\n", 100)
	if !result.Bag.HasErrors() {
		t.Fatal("expected errors")
	}
	result.Bag.Sort()

	var sb strings.Builder
	diagfmt.Pretty(&sb, result.Bag, result.FileSet, diagfmt.PrettyOpts{Color: false, Context: 2})
	out := sb.String()
	if !strings.Contains(out, "broken.sysdl:") {
		t.Errorf("missing path prefix:\n%s", out)
	}
	if !strings.Contains(out, "ERROR SYN0002:") {
		t.Errorf("missing severity/code:\n%s", out)
	}
	if !strings.Contains(out, "expected Punct \"}\"") {
		t.Errorf("missing message:\n%s", out)
	}
}

func TestPrettyLoadErrorPointsAtPath(t *testing.T) {
	// IO-диагностика несёт спан файла-заглушки: заголовок с путём есть,
	// строки исходника нет
	fs := source.NewFileSet()
	id := fs.AddVirtual("models/broken.sysdl", nil)
	bag := diag.NewBag(10)
	bag.Add(diag.Diagnostic{
		Severity: diag.SevError,
		Code:     diag.IOLoadFileError,
		Message:  "failed to load file: no such file",
		Primary:  source.Span{File: id},
	})

	var sb strings.Builder
	diagfmt.Pretty(&sb, bag, fs, diagfmt.PrettyOpts{})
	out := sb.String()
	if !strings.Contains(out, "models/broken.sysdl:1:1: ERROR IO0001:") {
		t.Errorf("missing path header:\n%s", out)
	}
	if strings.Contains(out, "^") {
		t.Errorf("empty file must not produce an underline:\n%s", out)
	}
}

func TestPrettyUnknownFileSpan(t *testing.T) {
	// спан с FileID, которого нет в FileSet, не должен ронять вывод
	fs := source.NewFileSet()
	bag := diag.NewBag(10)
	bag.Add(diag.Diagnostic{
		Severity: diag.SevError,
		Code:     diag.IOLoadFileError,
		Message:  "failed to load file: no such file",
		Primary:  source.Span{File: 7},
	})

	var sb strings.Builder
	diagfmt.Pretty(&sb, bag, fs, diagfmt.PrettyOpts{})
	out := sb.String()
	if !strings.Contains(out, "ERROR IO0001: failed to load file") {
		t.Errorf("diagnostic without a resolvable span must still print:\n%s", out)
	}
}

func TestPrettyUnderline(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("u.sysdl", []byte("part !;"))
	bag := diag.NewBag(10)
	bag.Add(diag.Diagnostic{
		Severity: diag.SevError,
		Code:     diag.SynUnexpectedToken,
		Message:  "test marker",
		Primary:  source.Span{File: id, Start: 5, End: 6},
	})

	var sb strings.Builder
	diagfmt.Pretty(&sb, bag, fs, diagfmt.PrettyOpts{})
	out := sb.String()
	if !strings.Contains(out, "part !;") {
		t.Errorf("missing source line:\n%s", out)
	}
	if !strings.Contains(out, "     ^") {
		t.Errorf("missing caret under column 6:\n%s", out)
	}
}
