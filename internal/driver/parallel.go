package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"sysdl/internal/ast"
	"sysdl/internal/diag"
	"sysdl/internal/lexer"
	"sysdl/internal/parser"
	"sysdl/internal/source"
	"sysdl/internal/token"
)

// TokenizeDirResult содержит результат токенизации одного файла.
type TokenizeDirResult struct {
	Path   string
	FileID source.FileID
	Tokens []token.Token
	Bag    *diag.Bag // только I/O диагностики: лексер не репортит
}

// ParseDirResult содержит результат разбора одного файла.
type ParseDirResult struct {
	Path    string
	FileID  source.FileID
	Builder *ast.Builder
	Root    ast.NodeID
	Bag     *diag.Bag
}

// listModelFiles возвращает отсортированный список всех *.sysdl файлов.
func listModelFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".sysdl") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// preload загружает все файлы в общий FileSet до запуска горутин: сам FileSet
// дальше только читается.
func preload(dir string, files []string) (*source.FileSet, map[string]source.FileID, map[string]error) {
	fileSet := source.NewFileSetWithBase(dir)
	fileIDs := make(map[string]source.FileID, len(files))
	loadErrors := make(map[string]error, len(files))
	for _, path := range files {
		fileID, err := fileSet.Load(path)
		if err != nil {
			loadErrors[path] = err
			// пустая заглушка: IO-диагностике нужна привязка к реальному пути
			fileIDs[path] = fileSet.AddVirtual(path, nil)
			continue
		}
		fileIDs[path] = fileID
	}
	return fileSet, fileIDs, loadErrors
}

// TokenizeDir токенизирует все *.sysdl файлы в директории параллельно.
// Результаты идут в порядке отсортированных путей.
func TokenizeDir(ctx context.Context, dir string, maxDiagnostics, jobs int) (*source.FileSet, []TokenizeDirResult, error) {
	files, err := listModelFiles(dir)
	if err != nil {
		return nil, nil, err
	}
	if len(files) == 0 {
		return source.NewFileSetWithBase(dir), nil, nil
	}

	fileSet, fileIDs, loadErrors := preload(dir, files)
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// индексы уникальны для каждой горутины, мьютекс не нужен
	results := make([]TokenizeDirResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			bag := diag.NewBag(maxDiagnostics)
			if loadErr, hadError := loadErrors[path]; hadError {
				bag.Add(diag.Diagnostic{
					Severity: diag.SevError,
					Code:     diag.IOLoadFileError,
					Message:  "failed to load file: " + loadErr.Error(),
					Primary:  source.Span{File: fileIDs[path]},
				})
				results[i] = TokenizeDirResult{Path: path, FileID: fileIDs[path], Bag: bag}
				return nil
			}

			fileID := fileIDs[path]
			results[i] = TokenizeDirResult{
				Path:   path,
				FileID: fileID,
				Tokens: lexer.Tokenize(fileSet.Get(fileID)),
				Bag:    bag,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fileSet, results, err
	}
	return fileSet, results, nil
}

// ParseDir парсит все *.sysdl файлы в директории параллельно.
func ParseDir(ctx context.Context, dir string, maxDiagnostics, jobs int) (*source.FileSet, []ParseDirResult, error) {
	files, err := listModelFiles(dir)
	if err != nil {
		return nil, nil, err
	}
	if len(files) == 0 {
		return source.NewFileSetWithBase(dir), nil, nil
	}

	fileSet, fileIDs, loadErrors := preload(dir, files)
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	results := make([]ParseDirResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			bag := diag.NewBag(maxDiagnostics)
			if loadErr, hadError := loadErrors[path]; hadError {
				bag.Add(diag.Diagnostic{
					Severity: diag.SevError,
					Code:     diag.IOLoadFileError,
					Message:  "failed to load file: " + loadErr.Error(),
					Primary:  source.Span{File: fileIDs[path]},
				})
				results[i] = ParseDirResult{Path: path, FileID: fileIDs[path], Bag: bag}
				return nil
			}

			fileID := fileIDs[path]
			builder := ast.NewBuilder(ast.Hints{})
			tokens := lexer.Tokenize(fileSet.Get(fileID))
			res := parser.ParseFile(tokens, builder, parser.Options{
				Reporter: diag.BagReporter{Bag: bag},
			})

			results[i] = ParseDirResult{
				Path:    path,
				FileID:  fileID,
				Builder: builder,
				Root:    res.Root,
				Bag:     bag,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fileSet, results, err
	}
	return fileSet, results, nil
}
