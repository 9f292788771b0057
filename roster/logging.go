package roster

import "github.com/sirupsen/logrus"

var logger = logrus.WithField("component", "roster")
