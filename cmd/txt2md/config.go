// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"strings"

	"github.com/spf13/viper"

	"github.com/pdiddy/txt2md/internal/history"
	"github.com/pdiddy/txt2md/internal/preview"
	"github.com/pdiddy/txt2md/pkg/types"
)

func setDefaults(v *viper.Viper) {
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.SetDefault("backend", string(types.BackendHeuristic))
	v.SetDefault("out_dir", "markdown")
	v.SetDefault("history_db", history.DefaultDBPath)
	v.SetDefault("log_level", "warn")
	v.SetDefault("preview.style", preview.DefaultStyle)
	v.SetDefault("preview.width", preview.DefaultWidth)
}

// loadConfig reads the merged flag, environment, and file settings.
func loadConfig(v *viper.Viper) types.Config {
	return types.Config{
		Conversion: types.ConversionConfig{
			Backend:          types.ConversionBackend(v.GetString("backend")),
			OutDir:           v.GetString("out_dir"),
			Force:            v.GetBool("force"),
			Archive:          v.GetString("archive"),
			ContainerRuntime: v.GetString("container_runtime"),
		},
		History: types.HistoryConfig{
			DBPath:   v.GetString("history_db"),
			Disabled: v.GetBool("no_history"),
		},
		Preview: types.PreviewConfig{
			Style: v.GetString("preview.style"),
			Width: v.GetInt("preview.width"),
		},
		LogLevel: v.GetString("log_level"),
	}
}
