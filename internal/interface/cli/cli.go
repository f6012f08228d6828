// Package cli はコマンドライン引数を解析して実行内容を組み立てます
package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"GitKeep/internal/domain/model"
	"GitKeep/internal/infrastructure/logging"
)

// ExitError は終了コードを伴うエラーです
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Config は1回の実行に必要な設定です
type Config struct {
	Operation model.Operation
	// Browse が true でパスが未指定の場合、ディレクトリ選択ダイアログで対象を選びます
	Browse    bool
	LogLevel  string
	LogFormat string
}

// NeedsBrowse はダイアログで対象ディレクトリを選ぶ必要があるかを返します
func (c *Config) NeedsBrowse() bool {
	return c.Browse && c.Operation.TargetPath == ""
}

const longHelp = `A tool to manage .gitkeep files.

Creates a .gitkeep marker in PATH so that version control keeps the
directory even when it is empty. With --let-go the marker is removed
instead. With --recursive every directory under PATH is processed,
except .git and anything inside it.`

// newCommand は解析結果を cfg に書き込むルートコマンドを作成します
func newCommand(cfg *Config, ran, hasPath *bool) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "gitkeep [PATH]",
		Short:         "A tool to manage .gitkeep files",
		Long:          longHelp,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			*ran = true
			*hasPath = len(args) > 0
			if *hasPath {
				cfg.Operation.TargetPath = args[0]
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&cfg.Operation.Message, "message", "m", cfg.Operation.Message, "Custom message for the .gitkeep file")
	flags.BoolVarP(&cfg.Operation.Empty, "empty", "e", false, "Create an empty .gitkeep file")
	flags.BoolVarP(&cfg.Operation.Remove, "let-go", "l", false, "Remove the .gitkeep file (let go)")
	flags.BoolVarP(&cfg.Operation.Recursive, "recursive", "r", false, "Recursively apply the action to subdirectories")
	flags.BoolVarP(&cfg.Browse, "browse", "b", false, "Choose PATH with a directory dialog when it is omitted")
	flags.StringVar(&cfg.LogLevel, "log-level", "warn", "Diagnostic log level: debug, info, warn or error")
	flags.StringVar(&cfg.LogFormat, "log-format", logging.FormatText, "Diagnostic log format: text or json")

	return cmd
}

// Parse はコマンドライン引数を解析します。設定、ヘルプ表示のみで終了すべきかどうか、
// または ExitError を返します。パスの存在確認は行いません。
func Parse(args []string, out, errOut io.Writer) (*Config, bool, error) {
	cfg := &Config{Operation: model.NewOperation("")}
	ran, hasPath := false, false

	// cobra は nil を受け取ると os.Args を読むため空スライスにする
	if args == nil {
		args = []string{}
	}

	cmd := newCommand(cfg, &ran, &hasPath)
	cmd.SetArgs(args)
	cmd.SetOut(out)
	cmd.SetErr(errOut)

	if err := cmd.Execute(); err != nil {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("Error: %v\nRun 'gitkeep --help' for usage.", err)}
	}

	// --help が処理された場合 RunE は呼ばれない
	if !ran {
		return nil, true, nil
	}

	// 明示的な空文字列は PATH として扱い、後段で存在しないパスとして報告する
	if !hasPath && !cfg.Browse {
		if err := cmd.Help(); err != nil {
			return nil, false, fmt.Errorf("ヘルプの表示に失敗しました: %w", err)
		}
		return nil, true, nil
	}

	if !logging.ValidLevel(cfg.LogLevel) {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	if !logging.ValidFormat(cfg.LogFormat) {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	cfg.LogFormat = strings.ToLower(cfg.LogFormat)

	return cfg, false, nil
}
