// Package main provides localization for the y4mtool CLI.
package main

import (
	"github.com/ideamans/go-l10n"
)

func init() {
	// Register Japanese translations for CLI messages.
	l10n.Register("ja", l10n.LexiconMap{
		// Root command
		"Write, inspect and decode YUV4MPEG2 streams": "YUV4MPEG2 ストリームの書き込み・検査・デコード",
		"YAML configuration file":                     "YAML 設定ファイル",
		"Log level (trace, debug, info, warn, error)": "ログレベル（trace, debug, info, warn, error）",
		"Suppress all log output":                     "すべてのログ出力を抑制",
		"zstd level for .zst outputs (fastest, default, better, best)": ".zst 出力の zstd レベル（fastest, default, better, best）",

		// Generate command
		"Generate a test-pattern stream":             "テストパターンのストリームを生成",
		"Output .y4m or .y4m.zst path (required)":    "出力先の .y4m または .y4m.zst パス（必須）",
		"Frame width in pixels":                      "フレームの幅（ピクセル）",
		"Frame height in pixels":                     "フレームの高さ（ピクセル）",
		"Frames per second":                          "フレームレート",
		"Number of frames":                           "フレーム数",
		"Pattern (solid, bars, counter)":             "パターン（solid, bars, counter）",
		"Fill color (#rrggbb)":                       "塗りつぶし色（#rrggbb）",
		"Packed pixel channel order (rgb, bgr)":      "パック済みピクセルのチャンネル順（rgb, bgr）",
		"Write a Markdown summary to this path":      "Markdown サマリーをこのパスに書き込む",
		"Skip re-probing the written stream":         "書き込んだストリームの再検査を省略",

		// Encode command
		"Encode still images into a stream":                    "静止画像をストリームにエンコード",
		"Glob selecting input images, in lexical order":        "入力画像を選択するグロブ（辞書順）",
		"no input images":                                      "入力画像がありません",
		"Frame width in pixels (default: first image's width)":  "フレームの幅（デフォルト: 最初の画像の幅）",
		"Frame height in pixels (default: first image's height)": "フレームの高さ（デフォルト: 最初の画像の高さ）",

		// Probe command
		"Validate a stream and describe its layout": "ストリームを検証してレイアウトを表示",
		"Output format (text, yaml, markdown)":      "出力形式（text, yaml, markdown）",

		// Extract command
		"Extract frames as images":                        "フレームを画像として抽出",
		"Directory for extracted frames":                  "抽出したフレームの出力先ディレクトリ",
		"File name pattern, extension selects PNG or JPEG": "ファイル名パターン（拡張子で PNG か JPEG を選択）",
		"Frame indices to extract (default: all)":          "抽出するフレーム番号（デフォルト: すべて）",
		"Read one frame at a time instead of buffering":    "バッファリングせず 1 フレームずつ読み込む",
		"Decode without writing any files":                 "ファイルを書き込まずにデコードのみ行う",

		// Stream command
		"Print the first sample of every frame": "各フレームの先頭サンプルを表示",

		// Version command
		"Show version information": "バージョン情報を表示",
		"y4mtool version %s":       "y4mtool バージョン %s",

		// Errors
		"missing input path":     "入力パスが指定されていません",
		"unknown format %q":      "不明な出力形式 %q",
	})
}
