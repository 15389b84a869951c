package main

import (
	"log"
	"os"

	"github.com/bookie/bookie_server/internal/config"
	"github.com/bookie/bookie_server/internal/importer"
	"github.com/bookie/bookie_server/internal/repository"
	"github.com/bookie/bookie_server/internal/services"

	"github.com/urfave/cli/v2"
)

func main() {
	// 設定をロード
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("設定の読み込みに失敗しました: %v", err)
	}

	// データベース接続
	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatalf("データベース接続に失敗しました: %v", err)
	}

	// サービスを組み立て
	bookmarkRepo := repository.NewBookmarkRepository(db)
	tagRepo := repository.NewTagRepository(db)
	bookmarkService := services.NewBookmarkService(bookmarkRepo, tagRepo)

	app := &cli.App{
		Name:  "bookie-import",
		Usage: "エクスポートされたJSONファイルからブックマークを取り込む",
		Commands: []*cli.Command{
			{
				Name:      "file",
				Usage:     "JSONファイルからインポート",
				ArgsUsage: "<file>",
				Action:    importer.ImportCommand(bookmarkService),
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
