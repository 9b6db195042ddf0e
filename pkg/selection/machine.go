package selection

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	"liyu1981.xyz/coldtrack-monitor/pkg/common"
	"liyu1981.xyz/coldtrack-monitor/pkg/feed"
	"liyu1981.xyz/coldtrack-monitor/pkg/history"
	"liyu1981.xyz/coldtrack-monitor/pkg/models"
)

var (
	ErrNoBranch      = errors.New("no branch selected")
	ErrUnknownSensor = errors.New("sensor not in the selected branch")
)

type State int

const (
	NoBranch State = iota
	BranchOnly
	BranchAndSensor
)

func (s State) String() string {
	switch s {
	case BranchOnly:
		return "branch_only"
	case BranchAndSensor:
		return "branch_and_sensor"
	default:
		return "no_branch"
	}
}

func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

type Directory interface {
	ListActiveBranches(ctx context.Context) ([]models.Branch, error)
	ListSensors(ctx context.Context, branchID models.ID) ([]models.Sensor, error)
}

type Preferences interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

type LiveFeed interface {
	Subscribe(feedPath string, fn func(models.LiveReading)) (*feed.Handle, error)
}

type Snapshot struct {
	State    State                 `json:"state"`
	BranchID models.ID             `json:"branch_id,omitempty"`
	Sensor   *models.Sensor        `json:"sensor,omitempty"`
	Branches []models.Branch       `json:"branches"`
	Sensors  []models.Sensor       `json:"sensors"`
	Latest   *models.LiveReading   `json:"latest,omitempty"`
	History  []models.HistoryPoint `json:"history"`
}

// Machine owns the branch/sensor selection together with the one live
// subscription and the history buffer of the selected sensor.
type Machine struct {
	dir   Directory
	prefs Preferences
	live  LiveFeed
	loc   *time.Location

	// serializes transitions; feed callbacks never take it
	opMu sync.Mutex

	mu       sync.RWMutex
	state    State
	branchID models.ID
	sensor   *models.Sensor
	branches []models.Branch
	sensors  []models.Sensor
	latest   *models.LiveReading
	history  *history.Buffer
	handle   *feed.Handle
	gen      uint64

	logger *zap.Logger
}

func NewMachine(dir Directory, prefs Preferences, live LiveFeed, loc *time.Location) *Machine {
	if loc == nil {
		loc = time.UTC
	}
	return &Machine{
		dir:     dir,
		prefs:   prefs,
		live:    live,
		loc:     loc,
		history: history.New(history.DefaultCapacity),
		logger:  common.GetCategoryLogger(common.LoggerNameRealtime, common.LoggerCategorySelection),
	}
}

// Init loads the branch list and restores the persisted selection. A
// persisted sensor is honoured only when the branch still lists it.
func (m *Machine) Init(ctx context.Context) error {
	m.opMu.Lock()
	defer m.opMu.Unlock()

	var errs []error
	branches, err := m.dir.ListActiveBranches(ctx)
	if err != nil {
		m.logger.Warn("failed to load branches", zap.Error(err))
		errs = append(errs, err)
	}
	m.mu.Lock()
	m.branches = branches
	m.mu.Unlock()

	branchID, ok := m.readPreference(ctx, common.PreferenceKeyBranch)
	if !ok {
		m.logger.Info("no persisted selection")
		return errors.Join(errs...)
	}
	sensorID, _ := m.readPreference(ctx, common.PreferenceKeySensor)

	if err := m.enterBranch(ctx, models.ID(branchID)); err != nil {
		return errors.Join(append(errs, err)...)
	}

	if sensorID == "" {
		return errors.Join(errs...)
	}
	sensor, found := m.findSensor(models.ID(sensorID))
	if !found {
		m.logger.Info("persisted sensor not in branch, staying on branch",
			zap.String("branch_id", branchID), zap.String("sensor_id", sensorID))
		return errors.Join(errs...)
	}
	if err := m.enterSensor(ctx, sensor); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// SelectBranch moves to BranchOnly for id, dropping any active sensor.
// An empty id clears the selection.
func (m *Machine) SelectBranch(ctx context.Context, id models.ID) error {
	if id == "" {
		m.ClearBranch()
		return nil
	}
	m.opMu.Lock()
	defer m.opMu.Unlock()
	return m.enterBranch(ctx, id)
}

// SelectSensor moves to BranchAndSensor. Inactive sensors are allowed.
func (m *Machine) SelectSensor(ctx context.Context, id models.ID) error {
	m.opMu.Lock()
	defer m.opMu.Unlock()

	m.mu.RLock()
	state := m.state
	m.mu.RUnlock()
	if state == NoBranch {
		return ErrNoBranch
	}

	sensor, found := m.findSensor(id)
	if !found {
		return fmt.Errorf("%w: %s", ErrUnknownSensor, id)
	}
	return m.enterSensor(ctx, sensor)
}

func (m *Machine) ClearBranch() {
	m.opMu.Lock()
	defer m.opMu.Unlock()

	m.dropSensor()
	m.mu.Lock()
	m.state = NoBranch
	m.branchID = ""
	m.sensors = nil
	m.mu.Unlock()
	m.logger.Info("selection cleared")
}

func (m *Machine) Snapshot() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()

	snap := Snapshot{
		State:    m.state,
		BranchID: m.branchID,
		Branches: append(make([]models.Branch, 0, len(m.branches)), m.branches...),
		Sensors:  append(make([]models.Sensor, 0, len(m.sensors)), m.sensors...),
		History:  m.history.Points(),
	}
	if m.sensor != nil {
		s := *m.sensor
		snap.Sensor = &s
	}
	if m.latest != nil {
		r := *m.latest
		snap.Latest = &r
	}
	return snap
}

// Close cancels the live subscription. The selection itself is kept.
func (m *Machine) Close() {
	m.opMu.Lock()
	defer m.opMu.Unlock()
	m.dropSensor()
}

func (m *Machine) enterBranch(ctx context.Context, id models.ID) error {
	m.dropSensor()

	m.mu.Lock()
	m.state = BranchOnly
	m.branchID = id
	m.sensors = nil
	m.mu.Unlock()

	sensors, err := m.dir.ListSensors(ctx, id)
	if err != nil {
		m.logger.Warn("failed to load sensors", zap.String("branch_id", id.String()), zap.Error(err))
		return fmt.Errorf("loading sensors of branch %s: %w", id, err)
	}

	m.mu.Lock()
	m.sensors = sensors
	m.mu.Unlock()

	m.logger.Info("branch selected", zap.String("branch_id", id.String()), zap.Int("sensors", len(sensors)))
	return nil
}

func (m *Machine) enterSensor(ctx context.Context, sensor models.Sensor) error {
	m.dropSensor()

	m.mu.Lock()
	m.gen++
	gen := m.gen
	m.state = BranchAndSensor
	m.sensor = &sensor
	branchID := m.branchID
	m.mu.Unlock()

	handle, err := m.live.Subscribe(sensor.FeedPath, func(r models.LiveReading) {
		m.onReading(gen, r)
	})
	if err != nil {
		m.mu.Lock()
		m.state = BranchOnly
		m.sensor = nil
		m.mu.Unlock()
		m.logger.Warn("failed to subscribe to sensor", zap.String("sensor_id", sensor.ID.String()), zap.Error(err))
		return fmt.Errorf("subscribing to sensor %s: %w", sensor.ID, err)
	}

	m.mu.Lock()
	m.handle = handle
	m.mu.Unlock()

	m.persist(ctx, branchID, sensor.ID)
	m.logger.Info("sensor selected",
		zap.String("branch_id", branchID.String()),
		zap.String("sensor_id", sensor.ID.String()),
		zap.String("feed_path", sensor.FeedPath))
	return nil
}

// dropSensor cancels the live handle before the history is cleared so no
// late reading of the old sensor lands in the new window.
func (m *Machine) dropSensor() {
	m.mu.Lock()
	handle := m.handle
	m.handle = nil
	m.gen++
	m.mu.Unlock()

	handle.Cancel()

	m.mu.Lock()
	m.sensor = nil
	m.latest = nil
	m.history.Clear()
	if m.state == BranchAndSensor {
		m.state = BranchOnly
	}
	m.mu.Unlock()
}

func (m *Machine) onReading(gen uint64, r models.LiveReading) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if gen != m.gen {
		return
	}
	m.latest = &r
	m.history.Append(history.PointFrom(r, m.loc))
}

func (m *Machine) findSensor(id models.ID) (models.Sensor, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return common.Find(m.sensors, func(s models.Sensor) bool { return s.ID == id })
}

func (m *Machine) readPreference(ctx context.Context, key string) (string, bool) {
	v, ok, err := m.prefs.Get(ctx, key)
	if err != nil {
		m.logger.Warn("failed to read preference", zap.String("key", key), zap.Error(err))
		return "", false
	}
	return v, ok && v != ""
}

func (m *Machine) persist(ctx context.Context, branchID, sensorID models.ID) {
	if err := m.prefs.Set(ctx, common.PreferenceKeyBranch, branchID.String()); err != nil {
		m.logger.Warn("failed to persist branch", zap.Error(err))
	}
	if err := m.prefs.Set(ctx, common.PreferenceKeySensor, sensorID.String()); err != nil {
		m.logger.Warn("failed to persist sensor", zap.Error(err))
	}
}
