// Package filesystem はファイルシステム操作を提供します
package filesystem

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"GitKeep/internal/domain/model"
	"GitKeep/internal/infrastructure/logging"
)

var (
	// ErrNotExist は対象パスが存在しないことを表します
	ErrNotExist = errors.New("path does not exist")
	// ErrNotDirectory は対象パスがディレクトリではないことを表します
	ErrNotDirectory = errors.New("path is not a directory")
)

// DirectoryValidator はディレクトリの検証機能を提供するインターフェースです
type DirectoryValidator interface {
	ValidateDirectoryPath(path string) error
}

// DirectoryWalker はディレクトリツリーの列挙機能を提供するインターフェースです
type DirectoryWalker interface {
	DirectoryValidator
	Directories(root string) ([]model.Directory, error)
}

// Walker はディレクトリツリーを走査するための構造体です
type Walker struct {
	logger logging.Logger
}

// NewWalker は新しい Walker インスタンスを作成します
func NewWalker(logger logging.Logger) *Walker {
	return &Walker{logger: logger}
}

// ValidateDirectoryPath はパスが存在するディレクトリであることを確認します
func (w *Walker) ValidateDirectoryPath(path string) error {
	if path == "" {
		return fmt.Errorf("ディレクトリパスが指定されていません: %w", ErrNotExist)
	}

	fileInfo, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%s: %w", path, ErrNotExist)
		}
		return fmt.Errorf("%s の情報を取得できません: %w", path, err)
	}

	if !fileInfo.IsDir() {
		return fmt.Errorf("%s: %w", path, ErrNotDirectory)
	}

	return nil
}

// IsExcluded はパスのいずれかの要素がバージョン管理のメタデータディレクトリかどうかを判定します。
// ".." による打ち消しは考慮せず、与えられたパスの要素をそのまま比較します。
func IsExcluded(path string) bool {
	for _, segment := range strings.Split(filepath.ToSlash(path), "/") {
		if segment == model.VCSMetadataDir {
			return true
		}
	}
	return false
}

// Directories は root 以下のディレクトリを root 自身も含めて列挙します。
// 読み込めないエントリはスキップし、.git を含むパスには降りません。
// root がディレクトリへのシンボリックリンクの場合はリンク先を走査しますが、配下のリンクはたどりません。
func (w *Walker) Directories(root string) ([]model.Directory, error) {
	var dirs []model.Directory

	walkRoot := root
	if isSymlinkToDir(root) {
		// 末尾の区切り文字でリンク自体ではなくリンク先を Lstat させる
		walkRoot = root + string(os.PathSeparator)
	}

	err := filepath.WalkDir(walkRoot, func(path string, d fs.DirEntry, err error) error {
		if path == walkRoot {
			path = root
		}
		if err != nil {
			w.logger.Log(logging.LevelDebug, fmt.Sprintf("パス '%s' の走査中にエラー発生のためスキップ", path), err)
			return nil
		}

		if !d.IsDir() {
			return nil
		}

		if IsExcluded(path) {
			w.logger.Log(logging.LevelDebug, fmt.Sprintf("バージョン管理ディレクトリのためスキップ: %s", path), nil)
			return filepath.SkipDir
		}

		relPath, err := filepath.Rel(root, path)
		if err != nil {
			relPath = path
		}

		dirs = append(dirs, model.Directory{Path: path, RelPath: relPath})
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("ディレクトリの走査に失敗しました: %w", err)
	}

	return dirs, nil
}

func isSymlinkToDir(path string) bool {
	info, err := os.Lstat(path)
	if err != nil || info.Mode()&fs.ModeSymlink == 0 {
		return false
	}
	target, err := os.Stat(path)
	return err == nil && target.IsDir()
}
