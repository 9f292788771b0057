package cmd

import (
	"context"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"strings"
)

func NewRootCmd(ctx context.Context, args []string) *cobra.Command {
	// create a root submit photos CLI command and register sub commands
	rootCmd := &cobra.Command{
		Use: submitPhotos,
		Short: submitPhotos,
		SilenceUsage: true,
		SilenceErrors: true,
	}
	rootCmd.AddCommand(newStartCommand(ctx, args))
	// register to env variables, i.e. SUBMIT_PHOTOS_UPLOAD_MAX_FILESIZE
	viper.SetEnvPrefix(submitPhotosEnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	return rootCmd
}
