package cmd

import (
	"bufio"
	"context"
	"fmt"
	"github.com/DAv10195/submit_photos/db"
	"github.com/DAv10195/submit_photos/elements/graders"
	"github.com/DAv10195/submit_photos/path"
	"github.com/DAv10195/submit_photos/roster"
	"github.com/DAv10195/submit_photos/server"
	"github.com/DAv10195/submit_photos/session"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
	"io"
	"io/ioutil"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"
)

func newStartCommand(ctx context.Context, args []string) *cobra.Command {
	var setupErr error
	var configFilePath string
	// create the command
	startCmd := &cobra.Command{
		Use: start,
		Short: fmt.Sprintf("%s %s", start, submitPhotos),
		SilenceUsage: true,
		SilenceErrors: true,
		RunE: func (cmd *cobra.Command, args []string) error {
			if err := viper.BindPFlags(cmd.Flags()); err != nil {
				return err
			}
			if setupErr != nil {
				return setupErr
			}
			// define logging level and other configuration
			level, err := logrus.ParseLevel(viper.GetString(flagLogLevel))
			if err != nil {
				return err
			}
			logrus.SetLevel(level)
			logFile := viper.GetString(flagLogFile)
			if logFile != "" {
				lumberjackLogger := &lumberjack.Logger{
					Filename:   logFile,
					MaxSize:    viper.GetInt(flagLogFileMaxSize),
					MaxBackups: viper.GetInt(flagLogFileMaxBackups),
					MaxAge:     viper.GetInt(flagLogFileMaxAge),
					LocalTime:  true,
				}
				if viper.GetBool(flagLogFileAndStdout) {
					logrus.SetOutput(io.MultiWriter(os.Stdout, lumberjackLogger))
				} else {
					logrus.SetOutput(lumberjackLogger)
				}
			} else {
				logger.Debug("log file undefined")
			}
			// fail fast on a malformed upload limit instead of showing 0 MB on every page
			if _, err := roster.ParseUploadLimit(viper.GetString(flagUploadMaxFilesize)); err != nil {
				return fmt.Errorf("invalid %s: %v", flagUploadMaxFilesize, err)
			}
			// handle the DB dir
			dir := viper.GetString(flagDbDir)
			if err := os.MkdirAll(dir, 0700); err != nil {
				return err
			}
			if err := db.InitDB(dir); err != nil {
				return err
			}
			defer func() {
				if err := db.CloseDB(); err != nil {
					logger.WithError(err).Error("error closing DB")
				}
			}()
			encryptedAdminPwd, err := handleConfigEncryption(flagAdminPassword, viper.GetString(flagAdminPassword), configFilePath)
			if err != nil {
				return err
			}
			adminPwd, err := db.Decrypt(encryptedAdminPwd)
			if err != nil {
				return err
			}
			// initialize the session management
			if err := session.Init(dir); err != nil {
				return err
			}
			// make sure the default admin grader exists
			if err := graders.InitDefaultAdmin(adminPwd); err != nil {
				return err
			}
			// run the server
			tlsConf, err := server.GetTlsConfig(viper.GetString(flagTlsCertFile), viper.GetString(flagTlsKeyFile))
			if err != nil {
				return err
			}
			srv, err := server.InitServer(&server.Config{
				Port:			viper.GetInt(flagServerPort),
				UploadLimit:	&roster.ConfigUploadLimit{Value: func() string { return viper.GetString(flagUploadMaxFilesize) }},
				TlsConfig:		tlsConf,
			})
			if err != nil {
				return err
			}
			go func() {
				var serverErr error
				if tlsConf != nil {
					serverErr = srv.ListenAndServeTLS("", "")
				} else {
					serverErr = srv.ListenAndServe()
				}
				if serverErr != http.ErrServerClosed {
					logger.WithError(serverErr).Fatal("submit photos server crashed")
				}
			}()
			logger.Info("server is running")
			<- ctx.Done()
			logger.Info("stopping server...")
			shutdownCtx, timeout := context.WithTimeout(context.Background(), time.Minute)
			defer timeout()
			return srv.Shutdown(shutdownCtx)
		},
	}
	configFlagSet := pflag.NewFlagSet(submitPhotos, pflag.ContinueOnError)
	_ = configFlagSet.StringP(flagConfigFile, "c", "", "path to submit photos config file")
	configFlagSet.SetOutput(ioutil.Discard)
	_ = configFlagSet.Parse(args[1:])
	configFilePath, _ = configFlagSet.GetString(flagConfigFile)
	if configFilePath == "" {
		configFilePath = filepath.Join(path.GetDefaultConfigDirPath(), defaultConfigFileName)
	}
	viper.SetConfigType(yaml)
	viper.SetConfigFile(configFilePath)
	viper.SetDefault(flagLogFileAndStdout, deLogFileAndStdOut)
	viper.SetDefault(flagLogFileMaxSize, defMaxLogFileSize)
	viper.SetDefault(flagLogFileMaxAge, defMaxLogFileAge)
	viper.SetDefault(flagLogFileMaxBackups, defMaxLogFileBackups)
	viper.SetDefault(flagLogLevel, info)
	viper.SetDefault(flagServerPort, server.DefPort)
	viper.SetDefault(flagDbDir, path.GetDefaultDbDirPath())
	viper.SetDefault(flagAdminPassword, defAdminPassword)
	viper.SetDefault(flagUploadMaxFilesize, server.DefUploadLimit)
	startCmd.Flags().AddFlagSet(configFlagSet)
	startCmd.Flags().Int(flagLogFileMaxBackups, viper.GetInt(flagLogFileMaxBackups), "maximum number of log file rotations")
	startCmd.Flags().Int(flagLogFileMaxSize, viper.GetInt(flagLogFileMaxSize), "maximum size of the log file before it's rotated")
	startCmd.Flags().Int(flagLogFileMaxAge, viper.GetInt(flagLogFileMaxAge), "maximum age of the log file before it's rotated")
	startCmd.Flags().Bool(flagLogFileAndStdout, viper.GetBool(flagLogFileAndStdout), "write logs to stdout if log-file is specified?")
	startCmd.Flags().String(flagLogLevel, viper.GetString(flagLogLevel), "logging level [panic, fatal, error, warn, info, debug]")
	startCmd.Flags().String(flagLogFile, viper.GetString(flagLogFile), "log to file, specify the file location")
	startCmd.Flags().String(flagDbDir, viper.GetString(flagDbDir), "db directory of the submit photos server")
	startCmd.Flags().Int(flagServerPort, viper.GetInt(flagServerPort), "port the submit photos server should listen on")
	startCmd.Flags().String(flagAdminPassword, viper.GetString(flagAdminPassword), "password of the default admin grader, stored encrypted in the config file")
	startCmd.Flags().String(flagUploadMaxFilesize, viper.GetString(flagUploadMaxFilesize), "maximum photo upload size, i.e. 8M, 512K or 1048576")
	startCmd.Flags().String(flagTlsCertFile, viper.GetString(flagTlsCertFile), "path to a file containing a certificate to use for tls")
	startCmd.Flags().String(flagTlsKeyFile, viper.GetString(flagTlsKeyFile), "path to a file containing a key to use for tls")
	if err := viper.ReadInConfig(); err != nil && !os.IsNotExist(err) {
		setupErr = err
	}
	return startCmd
}

// encrypt the value of the given config key if it isn't encrypted yet, and write the encrypted value back to
// the config file if it exists
func handleConfigEncryption(key, value, configFilePath string) (string, error) {
	if strings.HasPrefix(value, encryptedPrefix) {
		return strings.TrimPrefix(value, encryptedPrefix), nil
	}
	encryptedValue, err := db.Encrypt(value)
	if err != nil {
		return "", err
	}
	if _, err = os.Stat(configFilePath); err != nil {
		if !os.IsNotExist(err) {
			return "", err
		}
		return encryptedValue, nil
	}
	confLines, err := readConfLines(configFilePath)
	if err != nil {
		return "", err
	}
	for i := 0; i < len(confLines); i++ {
		if strings.HasPrefix(strings.TrimSpace(confLines[i]), key + ":") {
			confLines[i] = fmt.Sprintf("%s: %s%s", key, encryptedPrefix, encryptedValue)
		}
	}
	if err = writeConfLines(confLines, configFilePath); err != nil {
		return "", err
	}
	return encryptedValue, nil
}

// read the conf lines and return a list of them
func readConfLines(configFilePath string) ([]string, error) {
	confFile, err := os.Open(configFilePath)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := confFile.Close(); err != nil {
			logger.WithError(err).Error("error closing config file after reading")
		}
	}()
	var confLines []string
	confScanner := bufio.NewScanner(confFile)
	for confScanner.Scan() {
		confLines = append(confLines, confScanner.Text())
	}
	return confLines, confScanner.Err()
}

// write the given conf lines to the given path
func writeConfLines(confLines []string, configFilePath string) error {
	confFile, err := os.Create(configFilePath)
	if err != nil {
		return err
	}
	defer func() {
		if err := confFile.Close(); err != nil {
			logger.WithError(err).Error("error closing config file after writing")
		}
	}()
	confWriter := bufio.NewWriter(confFile)
	for _, line := range confLines {
		if _, err := fmt.Fprintln(confWriter, line); err != nil {
			return err
		}
	}
	return confWriter.Flush()
}
