package network

import (
	"sort"
	"testing"

	"github.com/Logta/aco-simulation/pkg/api"
)

func TestRegisterUnregister(t *testing.T) {
	b := NewBroadcaster()

	ch := b.Register("v1")
	if !b.HasSubscriber("v1") {
		t.Fatal("подписчик не виден после Register")
	}
	if b.SubscriberCount() != 1 {
		t.Errorf("SubscriberCount = %d, want 1", b.SubscriberCount())
	}

	b.Unregister("v1")
	if b.HasSubscriber("v1") {
		t.Error("подписчик виден после Unregister")
	}

	// Канал закрыт - чтение не блокируется
	if _, ok := <-ch; ok {
		t.Error("канал должен быть закрыт и пуст")
	}
}

func TestRegisterReplacesOldChannel(t *testing.T) {
	b := NewBroadcaster()

	old := b.Register("v1")
	fresh := b.Register("v1") // повторное подключение той же вкладки

	// Старый канал закрыт, новый живой
	if _, ok := <-old; ok {
		t.Error("старый канал должен быть закрыт")
	}

	b.SendTo("v1", api.ServerResponse{Type: "UPDATE", Tick: 7})
	select {
	case msg := <-fresh:
		if msg.Tick != 7 {
			t.Errorf("Tick = %d, want 7", msg.Tick)
		}
	default:
		t.Error("новый канал не получил снимок")
	}
}

func TestSendToUnknownViewer(t *testing.T) {
	b := NewBroadcaster()
	// Не должно паниковать и блокироваться
	b.SendTo("ghost", api.ServerResponse{Type: "UPDATE"})
}

func TestSendToDropsWhenFull(t *testing.T) {
	b := NewBroadcaster()
	b.Register("slow")

	// Переполняем буфер: лишние кадры молча дропаются
	for i := 0; i < 300; i++ {
		b.SendTo("slow", api.ServerResponse{Type: "UPDATE", Tick: int64(i)})
	}
	// Дошли сюда без блокировки - контракт соблюден
}

func TestViewerIDs(t *testing.T) {
	b := NewBroadcaster()
	b.Register("a")
	b.Register("b")

	ids := b.ViewerIDs()
	sort.Strings(ids)
	if len(ids) != 2 || ids[0] != "a" || ids[1] != "b" {
		t.Errorf("ViewerIDs = %v, want [a b]", ids)
	}
}
