package memory

import "github.com/mindcase/mindcase/internal/server/repositories"

// Manager bundles one in-memory repository per record kind.
type Manager struct {
	users    *UserRepository
	moods    *MoodRepository
	journals *JournalRepository
	foods    *FoodRepository
	steps    *StepsRepository
	chats    *ChatRepository
}

var _ repositories.Manager = (*Manager)(nil)

func NewManager() *Manager {
	return &Manager{
		users:    NewUserRepository(),
		moods:    NewMoodRepository(),
		journals: NewJournalRepository(),
		foods:    NewFoodRepository(),
		steps:    NewStepsRepository(),
		chats:    NewChatRepository(),
	}
}

func (m *Manager) Users() repositories.UserRepository       { return m.users }
func (m *Manager) Moods() repositories.MoodRepository       { return m.moods }
func (m *Manager) Journals() repositories.JournalRepository { return m.journals }
func (m *Manager) Foods() repositories.FoodRepository       { return m.foods }
func (m *Manager) Steps() repositories.StepsRepository      { return m.steps }
func (m *Manager) Chats() repositories.ChatRepository       { return m.chats }
