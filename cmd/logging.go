package cmd

import "github.com/sirupsen/logrus"

var logger = logrus.WithField("component", "cmd")
