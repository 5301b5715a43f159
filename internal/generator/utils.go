package generator

import (
	"bytes"
	"fmt"
	"os"
	"text/template"

	"github.com/subdispatch/subdispatch/internal/templates"
)

// renderTemplate loads a template, parses it with the common and the
// provided funcMap, and executes it into a buffer.
func renderTemplate(tmplName string, data interface{}, funcMap template.FuncMap) ([]byte, error) {
	tmplContent, err := templates.Get(tmplName)
	if err != nil {
		return nil, err
	}

	funcs := GetCommonFuncMap()
	for k, v := range funcMap {
		funcs[k] = v
	}

	t, err := template.New(tmplName).Funcs(funcs).Parse(tmplContent)
	if err != nil {
		return nil, fmt.Errorf("failed to parse template %s: %w", tmplName, err)
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to execute template %s: %w", tmplName, err)
	}
	return buf.Bytes(), nil
}

// ExecuteTemplate renders a template to outputPath. It refuses to replace an
// existing file.
func ExecuteTemplate(tmplName string, outputPath string, data interface{}) error {
	content, err := renderTemplate(tmplName, data, nil)
	if err != nil {
		return err
	}

	f, err := os.OpenFile(outputPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.Write(content)
	return err
}
