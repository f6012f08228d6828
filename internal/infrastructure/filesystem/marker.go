package filesystem

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"GitKeep/internal/domain/model"
)

// MarkerFileMode はマーカーファイル作成時のパーミッションです
const MarkerFileMode fs.FileMode = 0644

// MarkerOperator はマーカーファイルの作成と削除を行うインターフェースです
type MarkerOperator interface {
	Create(dir string, content []byte) (model.Marker, error)
	Remove(dir string) (model.Marker, bool, error)
}

// MarkerStore はディレクトリ内の .gitkeep を読み書きする構造体です
type MarkerStore struct{}

// NewMarkerStore は新しい MarkerStore インスタンスを作成します
func NewMarkerStore() *MarkerStore {
	return &MarkerStore{}
}

// Create は dir にマーカーを作成します。既存のファイルは切り詰めて上書きします。
func (s *MarkerStore) Create(dir string, content []byte) (model.Marker, error) {
	marker := model.Marker{Path: model.MarkerPath(dir)}

	file, err := os.OpenFile(marker.Path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, MarkerFileMode)
	if err != nil {
		return marker, err
	}

	if len(content) > 0 {
		if _, err := file.Write(content); err != nil {
			file.Close()
			return marker, fmt.Errorf("書き込みに失敗しました: %w", err)
		}
	}

	if err := file.Close(); err != nil {
		return marker, fmt.Errorf("クローズに失敗しました: %w", err)
	}

	return marker, nil
}

// Remove は dir のマーカーを削除します。マーカーが存在しない場合は removed=false を返します。
func (s *MarkerStore) Remove(dir string) (model.Marker, bool, error) {
	marker := model.Marker{Path: model.MarkerPath(dir)}

	if _, err := os.Lstat(marker.Path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return marker, false, nil
		}
		return marker, false, err
	}

	if err := os.Remove(marker.Path); err != nil {
		return marker, false, err
	}

	return marker, true, nil
}
