package cli

// Messages is one language's worth of user-facing text for the menu loop.
type Messages struct {
	CurrentDir    string // %s = working directory
	Welcome       string
	Menu          []string
	Prompt        string
	ListHeader    string
	NoTasks       string
	TaskLine      string // id, title, description, status
	StatusDone    string
	StatusPending string
	Progress      string
	GroupPending  string
	GroupDone     string
	GroupNone     string

	AddHeader   string
	TitlePrompt string
	DescPrompt  string
	EmptyTitle  string
	Added       string // %d = new id

	CompleteHeader   string
	CompleteIDPrompt string
	Completed        string

	DeleteHeader   string
	DeleteIDPrompt string
	Deleted        string

	InvalidID     string
	InvalidChoice string
	StorageFailed string // %v = error
	Farewell      string
}

var english = Messages{
	CurrentDir: "Current directory: %s",
	Welcome:    "Welcome to the Todo App!",
	Menu: []string{
		"1. List tasks",
		"2. Add a task",
		"3. Complete a task",
		"4. Delete a task",
		"5. Exit",
	},
	Prompt:        "Enter your choice (1-5):",
	ListHeader:    "Tasks:",
	NoTasks:       "(no tasks)",
	TaskLine:      "ID: %d, Title: %s, Description: %s, Status: %s",
	StatusDone:    "complete",
	StatusPending: "incomplete",
	Progress:      "Progress:",
	GroupPending:  "Pending",
	GroupDone:     "Done",
	GroupNone:     "(none)",

	AddHeader:   "Adding a new task.",
	TitlePrompt: "Title:",
	DescPrompt:  "Description:",
	EmptyTitle:  "Title cannot be empty.",
	Added:       "Task added (ID: %d).",

	CompleteHeader:   "Choose the task to complete:",
	CompleteIDPrompt: "Enter the ID of the task to complete:",
	Completed:        "Task completed.",

	DeleteHeader:   "Choose the task to delete:",
	DeleteIDPrompt: "Enter the ID of the task to delete:",
	Deleted:        "Task deleted.",

	InvalidID:     "Invalid task ID.",
	InvalidChoice: "Invalid choice.",
	StorageFailed: "Storage error: %v",
	Farewell:      "Exiting the application.",
}

var japanese = Messages{
	CurrentDir: "現在のディレクトリ: %s",
	Welcome:    "Welcome to the Todo App!",
	Menu: []string{
		"1. タスクの一覧を表示",
		"2. タスクを追加",
		"3. タスクを完了にする",
		"4. タスクを削除",
		"5. アプリケーションを終了",
	},
	Prompt:        "選択肢を入力してください (1-5):",
	ListHeader:    "タスク一覧:",
	NoTasks:       "(タスクはありません)",
	TaskLine:      "ID: %d, タイトル: %s, 詳細: %s, ステータス: %s",
	StatusDone:    "完了",
	StatusPending: "未完了",
	Progress:      "進捗:",
	GroupPending:  "未完了",
	GroupDone:     "完了",
	GroupNone:     "(なし)",

	AddHeader:   "新しいタスクを追加します。",
	TitlePrompt: "タイトル:",
	DescPrompt:  "詳細:",
	EmptyTitle:  "タイトルを入力してください。",
	Added:       "タスクが追加されました。(ID: %d)",

	CompleteHeader:   "完了するタスクを選択してください:",
	CompleteIDPrompt: "完了するタスクのIDを入力してください:",
	Completed:        "タスクが完了しました。",

	DeleteHeader:   "削除するタスクを選択してください:",
	DeleteIDPrompt: "削除するタスクのIDを入力してください:",
	Deleted:        "タスクが削除されました。",

	InvalidID:     "無効なタスクIDです。",
	InvalidChoice: "無効な選択です。",
	StorageFailed: "ストレージエラー: %v",
	Farewell:      "アプリケーションを終了します。",
}

// MessagesFor returns the catalog for lang, English when unknown.
func MessagesFor(lang string) Messages {
	if lang == "ja" {
		return japanese
	}
	return english
}
