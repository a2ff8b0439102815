package fuzztests

import (
	"bytes"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const (
	maxSeedBytes = 64 << 10 // 64 KiB на один сид
)

func addCorpusSeeds(f *testing.F) {
	addTestdataSeeds(f)
	addLanguageSeeds(f)
	// граничные случаи лексера
	for _, s := range []string{`"abc`, "$", "1e", "1e+", "-", "<<-", ".e1", "#", "\"\\", "\xff"} {
		f.Add([]byte(s))
	}
}

func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("..", "..", "testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	// проходим по дереву testdata, добавляем все *.em файлы
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if filepath.Ext(path) != ".em" {
			return nil
		}
		// #nosec G304 -- path comes from repository testdata walk
		src, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		f.Add(clampSeed(src))
		return nil
	})
	if err != nil {
		return
	}
	// добавляем хотя бы один минимальный пример на случай пустого testdata
	f.Add([]byte{})
	f.Add([]byte("Main { run: x -> \"hi\" } # done\n"))
}

func addLanguageSeeds(f *testing.F) {
	specPath := filepath.Join("..", "..", "LANGUAGE.md")
	// #nosec G304 -- path is a fixed repository location
	data, err := os.ReadFile(specPath)
	if err != nil {
		return
	}
	lines := bytes.Split(data, []byte{'\n'})
	var block [][]byte
	inEmberBlock := false
	for _, line := range lines {
		trimmed := strings.TrimSpace(string(line))
		if strings.HasPrefix(trimmed, "```ember") {
			inEmberBlock = true
			block = block[:0]
			continue
		}
		if strings.HasPrefix(trimmed, "```") {
			if inEmberBlock {
				snippet := clampSeed(bytes.Join(block, []byte{'\n'}))
				if len(snippet) > 0 {
					f.Add(snippet)
				}
			}
			inEmberBlock = false
			block = block[:0]
			continue
		}
		if inEmberBlock {
			// сохраняем оригинальные строки, включая отступы
			block = append(block, line)
		}
	}
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}
