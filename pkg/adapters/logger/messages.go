package logger

import "github.com/ideamans/go-l10n"

func init() {
	l10n.Register("ja", l10n.LexiconMap{
		// Command level messages (info)
		"Generating %d frames (%dx%d at %d fps) to %s": "%d フレーム (%dx%d, %d fps) を %s に生成中",
		"Encoding %d images to %s":                     "%d 枚の画像を %s にエンコード中",
		"Wrote %d frames to %s":                        "%d フレームを %s に書き込みました",
		"Extracted %d frames to %s":                    "%d フレームを %s に抽出しました",
		"Summary saved to %s":                          "サマリーを %s に保存しました",
		"Interrupted, shutting down...":                "中断されました。シャットダウン中...",

		// Writer
		"Stream opened: %dx%d at %d fps": "ストリームを開きました: %dx%d, %d fps",
		"Wrote frame %d":                 "フレーム %d を書き込みました",
		"Stream closed after %d frames":  "%d フレーム書き込み後にストリームを閉じました",

		// Prober and readers
		"Header: %dx%d at %s fps":           "ヘッダー: %dx%d, %s fps",
		"Frame %d ends at offset %d":        "フレーム %d はオフセット %d で終了",
		"Probed %d frames, %d payload bytes": "%d フレーム、ペイロード %d バイトを検査しました",
		"Read frame %d":                     "フレーム %d を読み込みました",
		"Stream ended after %d frames":      "%d フレームでストリームが終了しました",

		// Stages
		"Resizing frame %d from %dx%d to %dx%d": "フレーム %d を %dx%d から %dx%d にリサイズ中",
		"Reading %d frames into %d bytes":       "%d フレームを %d バイトのバッファに読み込み中",
		"Streaming frames from %s":              "%s からフレームをストリーミング中",
		"Rendered %s frame %d":                  "%s パターンのフレーム %d を描画しました",

		// Warnings
		"%v":                                        "%v",
		"Removed incomplete output %s":              "不完全な出力 %s を削除しました",
		"Failed to remove incomplete output %s: %v": "不完全な出力 %s の削除に失敗しました: %v",

		// Errors
		"Failed to write frame %d: %v": "フレーム %d の書き込みに失敗しました: %v",
		"Failed to close stream: %v":   "ストリームのクローズに失敗しました: %v",
		"Failed to encode stream: %v":  "ストリームのエンコードに失敗しました: %v",
		"Failed to verify stream: %v":  "ストリームの検証に失敗しました: %v",
		"Failed to write summary: %v":  "サマリーの書き込みに失敗しました: %v",
	})
}
