// Package ui はユーザーインターフェース機能を提供します
package ui

import (
	"errors"
	"fmt"

	"github.com/sqweek/dialog"

	"GitKeep/internal/infrastructure/filesystem"
)

// ErrCancelled はユーザーがダイアログをキャンセルしたことを表します
var ErrCancelled = errors.New("ディレクトリの選択がキャンセルされました")

// BrowseFunc はタイトル付きのディレクトリ選択ダイアログを表示し、選択されたパスを返します
type BrowseFunc func(title string) (string, error)

// NativeBrowse は OS ネイティブのディレクトリ選択ダイアログを表示します
func NativeBrowse(title string) (string, error) {
	selected, err := dialog.Directory().Title(title).Browse()
	if errors.Is(err, dialog.ErrCancelled) {
		return "", ErrCancelled
	}
	return selected, err
}

// DirectorySelector はディレクトリ選択機能を提供します
type DirectorySelector struct {
	// validator はディレクトリパスの検証を行うインターフェースです
	validator filesystem.DirectoryValidator
	browse    BrowseFunc
}

// NewDirectorySelector は新しい DirectorySelector インスタンスを作成します。
// browse が nil の場合は NativeBrowse を使用します。
func NewDirectorySelector(validator filesystem.DirectoryValidator, browse BrowseFunc) *DirectorySelector {
	if browse == nil {
		browse = NativeBrowse
	}
	return &DirectorySelector{validator: validator, browse: browse}
}

// SelectDirectory はダイアログを表示してディレクトリを選択します
func (d *DirectorySelector) SelectDirectory(title string) (string, error) {
	selectedDir, err := d.browse(title)
	if err != nil {
		return "", fmt.Errorf("ディレクトリの選択がキャンセルまたはエラーになりました: %w", err)
	}

	if err := d.validator.ValidateDirectoryPath(selectedDir); err != nil {
		return "", fmt.Errorf("無効なディレクトリが選択されました: %w", err)
	}

	return selectedDir, nil
}
