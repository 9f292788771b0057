package server

import "github.com/sirupsen/logrus"

var logger = logrus.WithField("component", "server")
