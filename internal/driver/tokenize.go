package driver

import (
	"sysdl/internal/lexer"
	"sysdl/internal/source"
	"sysdl/internal/token"
)

// TokenizeResult — результат токенизации одного файла.
type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
}

// Tokenize загружает файл с диска и прогоняет его через лексер.
// Диагностик нет: лексер — тотальная функция.
func Tokenize(path string) (*TokenizeResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	file := fs.Get(fileID)

	return &TokenizeResult{
		FileSet: fs,
		File:    file,
		Tokens:  lexer.Tokenize(file),
	}, nil
}

// TokenizeString токенизирует текст из памяти (stdin, тесты, редактор).
func TokenizeString(name, text string) *TokenizeResult {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual(name, []byte(text))
	file := fs.Get(fileID)

	return &TokenizeResult{
		FileSet: fs,
		File:    file,
		Tokens:  lexer.Tokenize(file),
	}
}
