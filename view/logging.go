package view

import "github.com/sirupsen/logrus"

var logger = logrus.WithField("component", "view")
