// Package report はユーザー向けの処理結果出力を提供します
package report

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

// 出力行の接頭辞です
const (
	CreatedPrefix = "Created:"
	RemovedPrefix = "Removed:"
	ErrorPrefix   = "Error:"
	FailedPrefix  = "Failed to"
)

// Reporter は成功を標準出力、失敗を標準エラーへ1行ずつ出力します
type Reporter struct {
	out    io.Writer
	errOut io.Writer

	created lipgloss.Style
	removed lipgloss.Style
	failed  lipgloss.Style
}

// NewReporter は新しい Reporter インスタンスを作成します。
// 色付けは出力先ごとに判定するため、端末以外への出力はプレーンテキストになります。
func NewReporter(out, errOut io.Writer) *Reporter {
	if out == nil {
		out = os.Stdout
	}
	if errOut == nil {
		errOut = os.Stderr
	}

	outRenderer := lipgloss.NewRenderer(out)
	errRenderer := lipgloss.NewRenderer(errOut)

	return &Reporter{
		out:     out,
		errOut:  errOut,
		created: outRenderer.NewStyle().Foreground(lipgloss.Color("#5FD75F")).Bold(true),
		removed: outRenderer.NewStyle().Foreground(lipgloss.Color("#5B8DEF")).Bold(true),
		failed:  errRenderer.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Bold(true),
	}
}

// Created はマーカーの作成を報告します
func (r *Reporter) Created(path string) {
	fmt.Fprintf(r.out, "%s %s\n", r.created.Render(CreatedPrefix), path)
}

// Removed はマーカーの削除を報告します
func (r *Reporter) Removed(path string) {
	fmt.Fprintf(r.out, "%s %s\n", r.removed.Render(RemovedPrefix), path)
}

// PathNotExist は対象パスが存在しないことを報告します
func (r *Reporter) PathNotExist(path string) {
	fmt.Fprintf(r.errOut, "%s Path does not exist: %s\n", r.failed.Render(ErrorPrefix), path)
}

// PathNotDirectory は対象パスがディレクトリではないことを報告します
func (r *Reporter) PathNotDirectory(path string) {
	fmt.Fprintf(r.errOut, "%s Path is not a directory: %s\n", r.failed.Render(ErrorPrefix), path)
}

// InvalidTarget はその他の理由で対象パスを扱えないことを報告します
func (r *Reporter) InvalidTarget(path string, err error) {
	fmt.Fprintf(r.errOut, "%s Cannot access %s: %v\n", r.failed.Render(ErrorPrefix), path, err)
}

// Failed は1ディレクトリ分の操作の失敗を報告します。verb は "create" または "remove" です。
func (r *Reporter) Failed(verb, path string, err error) {
	fmt.Fprintf(r.errOut, "%s %s %s: %v\n", r.failed.Render(FailedPrefix), verb, path, err)
}
