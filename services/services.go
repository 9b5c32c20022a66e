// file: services/services.go
package services

// 进程内唯一的引擎与排期器实例，main 启动时注入存储和时钟
var (
	Progression *ProgressionService
	Workshop    *WorkshopService
)

func Init(store FlagStore, clock Clock) {
	Progression = NewProgressionService(store, clock)
	Workshop = NewWorkshopService(store, clock, Progression)
}
