// Package keep はマーカーファイルの作成・削除処理を提供します
package keep

import (
	"errors"
	"fmt"

	"GitKeep/internal/domain/model"
	"GitKeep/internal/infrastructure/filesystem"
	"GitKeep/internal/infrastructure/logging"
)

// Reporter は処理結果をユーザーへ出力するインターフェースです
type Reporter interface {
	Created(path string)
	Removed(path string)
	PathNotExist(path string)
	PathNotDirectory(path string)
	InvalidTarget(path string, err error)
	Failed(verb, path string, err error)
}

// Keeper は対象ディレクトリを決定し、ディレクトリごとにマーカー操作を行います
type Keeper struct {
	walker   filesystem.DirectoryWalker
	markers  filesystem.MarkerOperator
	reporter Reporter
	logger   logging.Logger
}

// NewKeeper は新しい Keeper インスタンスを作成します
func NewKeeper(walker filesystem.DirectoryWalker, markers filesystem.MarkerOperator, reporter Reporter, logger logging.Logger) *Keeper {
	return &Keeper{
		walker:   walker,
		markers:  markers,
		reporter: reporter,
		logger:   logger,
	}
}

// Run は op に従って処理を実行します。
// 失敗はすべて reporter へ出力され、処理全体を中断しません。
func (k *Keeper) Run(op model.Operation) model.Summary {
	var summary model.Summary

	if op.Recursive {
		k.runRecursive(op, &summary)
	} else {
		k.runSingle(op, &summary)
	}

	k.logger.Log(logging.LevelInfo, fmt.Sprintf("処理が完了しました (作成: %d, 削除: %d, 失敗: %d)",
		summary.Created, summary.Removed, summary.Failed), nil)
	return summary
}

func (k *Keeper) runSingle(op model.Operation, summary *model.Summary) {
	if err := k.walker.ValidateDirectoryPath(op.TargetPath); err != nil {
		switch {
		case errors.Is(err, filesystem.ErrNotExist):
			k.reporter.PathNotExist(op.TargetPath)
		case errors.Is(err, filesystem.ErrNotDirectory):
			k.reporter.PathNotDirectory(op.TargetPath)
		default:
			k.reporter.InvalidTarget(op.TargetPath, err)
		}
		k.logger.Log(logging.LevelDebug, "対象パスが不正なため処理を終了します", err)
		return
	}

	k.apply(op, op.TargetPath, summary)
}

func (k *Keeper) runRecursive(op model.Operation, summary *model.Summary) {
	dirs, err := k.walker.Directories(op.TargetPath)
	if err != nil {
		k.logger.Log(logging.LevelWarn, fmt.Sprintf("'%s' の走査に失敗", op.TargetPath), err)
		return
	}
	k.logger.Log(logging.LevelDebug, fmt.Sprintf("%d 個のディレクトリが見つかりました", len(dirs)), nil)

	for _, dir := range dirs {
		k.logger.Log(logging.LevelDebug, fmt.Sprintf("%s: %s", op.Action(), dir.RelPath), nil)
		k.apply(op, dir.Path, summary)
	}
}

// apply は1つのディレクトリに対してマーカーの作成または削除を行います
func (k *Keeper) apply(op model.Operation, dir string, summary *model.Summary) {
	switch op.Action() {
	case model.ActionRemove:
		marker, removed, err := k.markers.Remove(dir)
		if err != nil {
			summary.Failed++
			k.reporter.Failed(op.Action().String(), marker.Path, err)
			return
		}
		if removed {
			summary.Removed++
			k.reporter.Removed(marker.Path)
		}
	default:
		marker, err := k.markers.Create(dir, op.Content())
		if err != nil {
			summary.Failed++
			k.reporter.Failed(op.Action().String(), marker.Path, err)
			return
		}
		summary.Created++
		k.reporter.Created(marker.Path)
	}
}
