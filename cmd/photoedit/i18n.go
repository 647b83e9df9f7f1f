// Package main provides localization for the photoedit CLI.
package main

import (
	"github.com/ideamans/go-l10n"
)

func init() {
	// Register Japanese translations for CLI messages.
	l10n.Register("ja", l10n.LexiconMap{
		// Flag categories
		"Output":  "出力",
		"Fonts":   "フォント",
		"Debug":   "デバッグ",
		"Logging": "ログ",

		// Commands
		"Draw text overlays onto photos":                        "写真にテキストオーバーレイを描画",
		"Render every scene of a project onto its photo":        "プロジェクトの全シーンを写真に描画",
		"Render only the transparent layer scenes of a project": "プロジェクトの透明レイヤーシーンのみを描画",
		"List available font families and weights":              "利用可能なフォントファミリーとウェイトを一覧表示",
		"Show version information":                              "バージョン情報を表示",
		"photoedit version %s":                                  "photoedit バージョン %s",

		// Flags
		"Number of scenes composited in parallel (default: project or CPU count)": "並列に合成するシーン数（デフォルト: プロジェクト設定またはCPU数）",
		"Directory for rendered images (overrides the project)":                   "描画した画像の出力ディレクトリ（プロジェクト設定を上書き）",
		"Directory of .ttf/.otf fonts to load (overrides the project)":            "読み込む .ttf/.otf フォントのディレクトリ（プロジェクト設定を上書き）",
		"Longest output side in pixels; larger renders are downscaled":            "長辺の上限ピクセル数（超える場合は縮小）",
		"Write a run summary to file (Markdown, or JSON for .json paths)":         "実行サマリーをファイルに出力（Markdown、.json ならJSON）",
		"Outline every text box":                                                  "すべてのテキストボックスに枠線を描画",
		"Enable debug output":                                                     "デバッグ出力を有効化",
		"Directory for debug output":                                              "デバッグ出力のディレクトリ",
		"Log level (debug, info, warn, error)":                                    "ログレベル（debug, info, warn, error）",
		"Suppress all log output":                                                 "全てのログ出力を抑制",

		// Errors
		"Project file argument is required": "プロジェクトファイルの引数が必要です",

		// Summary content
		"Render Summary":           "レンダリングサマリー",
		"Generated":                "生成日時",
		"Project":                  "プロジェクト",
		"Scenes":                   "シーン",
		"Settings":                 "設定",
		"No scenes were rendered.": "描画されたシーンはありません。",
	})
}
