package db

import "github.com/sirupsen/logrus"

var logger = logrus.WithField("component", "db")
