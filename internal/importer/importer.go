package importer

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/bookie/bookie_server/internal/models"
	"github.com/bookie/bookie_server/internal/services"
	"github.com/bookie/bookie_server/internal/utils"

	"github.com/schollz/progressbar/v3"
	"github.com/tidwall/gjson"
	"github.com/urfave/cli/v2"
)

// Result インポート結果の集計
type Result struct {
	Imported int
	Skipped  int
	Failed   int
}

// ImportCommand JSONファイルからのインポートコマンド
func ImportCommand(bookmarkService services.BookmarkService) cli.ActionFunc {
	return func(c *cli.Context) error {
		if c.NArg() < 1 {
			return cli.Exit("ファイルを指定してください", 1)
		}

		result, err := ImportBookmarks(bookmarkService, c.Args().Get(0))
		if err != nil {
			return err
		}

		log.Printf("インポート完了: %d件成功, %d件スキップ, %d件失敗",
			result.Imported, result.Skipped, result.Failed)
		return nil
	}
}

// ImportBookmarks ブラウザエクスポートJSONのbookmarks配列を取り込む
//
// URLのないエントリはスキップし、個々の失敗はカウントするだけで
// 処理は続行する。
func ImportBookmarks(bookmarkService services.BookmarkService, filePath string) (*Result, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	entries := gjson.GetBytes(data, "bookmarks").Array()
	if len(entries) == 0 {
		return nil, fmt.Errorf("ファイルにブックマークが見つかりません: %s", filePath)
	}

	bar := progressbar.Default(int64(len(entries)), "インポート中")

	result := &Result{}
	for _, entry := range entries {
		_ = bar.Add(1)

		input, ok := entryToInput(entry)
		if !ok {
			result.Skipped++
			continue
		}

		if _, err := bookmarkService.Create(input); err != nil {
			log.Printf("インポートに失敗しました (%s): %v", input.URL, err)
			result.Failed++
			continue
		}
		result.Imported++
	}

	return result, nil
}

// entryToInput エクスポートされた1エントリを構築入力に変換
func entryToInput(entry gjson.Result) (models.BookmarkInput, bool) {
	url := entry.Get("url").String()
	if url == "" {
		return models.BookmarkInput{}, false
	}

	title := entry.Get("title").String()
	if title == "" {
		title = url
	}

	var tags []string
	for _, t := range entry.Get("tags").Array() {
		if name := strings.TrimSpace(t.String()); name != "" {
			tags = append(tags, name)
		}
	}

	input := models.BookmarkInput{
		Title: title,
		URL:   url,
		Notes: entry.Get("description").String(),
		Tags:  tags,
	}

	// created_at はUNIX秒でエクスポートされる
	if createdAt := entry.Get("created_at").Int(); createdAt > 0 {
		input.Created = models.NewOptionalString(
			utils.FormatISO8601(time.Unix(createdAt, 0)))
	}

	return input, true
}
