// Package fuzztests houses Go fuzz harnesses for the ember lexer. Its goal is
// to smoke test robustness: no panics, no hangs, and every successful
// tokenization must satisfy testkit.CheckTokens.
//
// Назначение: загружать байты в FileSet и прогонять их через лексер.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
//
// Зависимости: internal/source, internal/lexer, internal/diag, internal/testkit.

package fuzztests
