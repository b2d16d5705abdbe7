package driver

import (
	"sysdl/internal/ast"
	"sysdl/internal/diag"
	"sysdl/internal/lexer"
	"sysdl/internal/parser"
	"sysdl/internal/source"
)

// ParseResult — результат разбора одного файла.
type ParseResult struct {
	FileSet *source.FileSet
	File    *source.File
	Builder *ast.Builder
	Root    ast.NodeID
	Bag     *diag.Bag
}

// Parse загружает файл и строит дерево. Каждый вызов собирает свежие
// лексер/парсер/арену — общего изменяемого состояния между вызовами нет,
// параллельные разборы разных снапшотов не мешают друг другу.
func Parse(path string, maxDiagnostics int) (*ParseResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	return parseLoaded(fs, fileID, maxDiagnostics), nil
}

// ParseString разбирает текст из памяти. Хост с дебаунсом перепарсивает
// каждый снапшот независимо; отмена — просто отбросить результат.
func ParseString(name, text string, maxDiagnostics int) *ParseResult {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual(name, []byte(text))
	return parseLoaded(fs, fileID, maxDiagnostics)
}

func parseLoaded(fs *source.FileSet, fileID source.FileID, maxDiagnostics int) *ParseResult {
	file := fs.Get(fileID)
	bag := diag.NewBag(maxDiagnostics)
	builder := ast.NewBuilder(ast.Hints{})

	tokens := lexer.Tokenize(file)
	result := parser.ParseFile(tokens, builder, parser.Options{
		Reporter: diag.BagReporter{Bag: bag},
	})

	return &ParseResult{
		FileSet: fs,
		File:    file,
		Builder: builder,
		Root:    result.Root,
		Bag:     bag,
	}
}
