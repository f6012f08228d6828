// Package main はアプリケーションのエントリーポイントを提供します
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"GitKeep/internal/infrastructure/filesystem"
	"GitKeep/internal/infrastructure/logging"
	"GitKeep/internal/interface/cli"
	"GitKeep/internal/interface/ui"
	"GitKeep/internal/usecase/keep"
	"GitKeep/internal/usecase/report"
)

// browse はテストで差し替えられるディレクトリ選択ダイアログです
var browse ui.BrowseFunc = ui.NativeBrowse

func main() {
	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run は引数の解析からマーカー操作までを実行します。
// 対象パスの不正やディレクトリごとの失敗は出力されるだけで、エラーにはなりません。
func run(out, errOut io.Writer, args []string) error {
	cfg, shouldExit, err := cli.Parse(args, out, errOut)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	// ロガーの初期化
	logger := logging.NewLogger(errOut, cfg.LogLevel, cfg.LogFormat)
	walker := filesystem.NewWalker(logger)

	if cfg.NeedsBrowse() {
		selector := ui.NewDirectorySelector(walker, browse)
		path, err := selector.SelectDirectory("Select a directory for .gitkeep")
		if err != nil {
			return err
		}
		logger.Log(logging.LevelInfo, fmt.Sprintf("選択されたフォルダ: %s", path), nil)
		cfg.Operation.TargetPath = path
	}

	keeper := keep.NewKeeper(walker, filesystem.NewMarkerStore(), report.NewReporter(out, errOut), logger)
	keeper.Run(cfg.Operation)
	return nil
}
