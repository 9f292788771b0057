package session

import "github.com/sirupsen/logrus"

var logger = logrus.WithField("component", "session")
