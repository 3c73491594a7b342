package engine

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Logta/aco-simulation/pkg/api"
	"github.com/Logta/aco-simulation/pkg/logger"
)

// AddLog добавляет событие в ленту инстанса (уходит клиентам со
// следующим снимком) и дублирует его в серверный лог.
func (i *Instance) AddLog(text, logType string) {
	i.Logs = append(i.Logs, api.LogEntry{
		ID:        fmt.Sprintf("%s_%d", i.Name, time.Now().UnixNano()),
		Text:      text,
		Type:      logType,
		Timestamp: time.Now().UnixMilli(),
	})
	logger.Log.WithFields(logrus.Fields{
		"instance":  i.Name,
		"component": "sim_log",
		"log_type":  logType,
	}).Info(text)
}
