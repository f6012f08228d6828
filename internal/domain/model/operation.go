// package model はドメインモデルを定義します
package model

import "path/filepath"

const (
	// MarkerFileName は空ディレクトリを追跡させるためのマーカーファイル名です
	MarkerFileName = ".gitkeep"
	// DefaultMessage はメッセージ未指定時にマーカーへ書き込む内容です
	DefaultMessage = "Created by GitKeep"
	// VCSMetadataDir は再帰処理で除外するバージョン管理のメタデータディレクトリ名です
	VCSMetadataDir = ".git"
)

// Action はマーカーに対して行う操作の種類を表します
type Action int

const (
	ActionCreate Action = iota
	ActionRemove
)

func (a Action) String() string {
	if a == ActionRemove {
		return "remove"
	}
	return "create"
}

// Operation はコマンドライン引数から解決された1回の実行内容を表します
type Operation struct {
	// TargetPath は処理対象のディレクトリです
	TargetPath string
	// Message はマーカーに書き込むテキストです
	Message string
	// Empty が true の場合、Message に関わらず0バイトのマーカーを作成します
	Empty bool
	// Remove が true の場合、マーカーを作成せず削除します
	Remove bool
	// Recursive が true の場合、配下のすべてのディレクトリを対象にします
	Recursive bool
}

// NewOperation はデフォルトのメッセージを持つ Operation を作成します
func NewOperation(targetPath string) Operation {
	return Operation{TargetPath: targetPath, Message: DefaultMessage}
}

// Content はマーカーに書き込むバイト列を返します
func (o Operation) Content() []byte {
	if o.Empty {
		return []byte{}
	}
	return []byte(o.Message)
}

// Action は Remove フラグに対応する操作を返します
func (o Operation) Action() Action {
	if o.Remove {
		return ActionRemove
	}
	return ActionCreate
}

// Directory は走査で見つかったディレクトリを表します
type Directory struct {
	// Path は走査時のパスを表します
	Path string
	// RelPath は走査ルートからの相対パスを表します（ルート自身は "."）
	RelPath string
}

// Marker はディレクトリ内のマーカーファイルを表します
type Marker struct {
	Path string
}

// MarkerPath は dir 内のマーカーファイルのパスを返します
func MarkerPath(dir string) string {
	return filepath.Join(dir, MarkerFileName)
}

// Summary は1回の実行結果の集計です
type Summary struct {
	Created int
	Removed int
	Failed  int
}
