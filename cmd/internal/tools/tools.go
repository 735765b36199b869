package tools

import (
	"crypto/md5"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/google/uuid"
	"github.com/nathanhack/secded/benchmarking"
	"github.com/nathanhack/secded/linearblock/secded"
	"github.com/sirupsen/logrus"
)

//SimulationStats holds the stats of one channel simulator keyed by the error parameter
// (crossover probability for BSC, Eb/N0 for BPSK).
type SimulationStats struct {
	RunID    string // set once when the results file is first created
	TypeInfo string
	ECCInfo  string
	Stats    map[float64]benchmarking.Stats
}
type simulationStats struct {
	RunID    string
	TypeInfo string
	ECCInfo  string
	Stats    map[string]benchmarking.Stats
}

func (s *SimulationStats) MarshalJSON() ([]byte, error) {
	ss := simulationStats{
		RunID:    s.RunID,
		TypeInfo: s.TypeInfo,
		ECCInfo:  s.ECCInfo,
		Stats:    map[string]benchmarking.Stats{},
	}

	for f, stat := range s.Stats {
		ss.Stats[fmt.Sprintf("%v", f)] = stat
	}

	return json.Marshal(ss)
}

func (s *SimulationStats) UnmarshalJSON(bytes []byte) error {
	var ss simulationStats

	err := json.Unmarshal(bytes, &ss)
	if err != nil {
		return err
	}

	s.RunID = ss.RunID
	s.TypeInfo = ss.TypeInfo
	s.ECCInfo = ss.ECCInfo
	s.Stats = map[float64]benchmarking.Stats{}

	for fs, stat := range ss.Stats {
		f, err := strconv.ParseFloat(fs, 64)
		if err != nil {
			return err
		}
		s.Stats[f] = stat
	}
	return nil
}

//Md5Sum identifies the code a result file was produced with.
func Md5Sum(c *secded.Codec) string {
	return fmt.Sprintf("%x", md5.Sum([]byte(c.Block().H.String())))
}

//NewOrLoadResults loads the results at filepath or starts new ones, and checks they
// were made by the same simulator and code.
func NewOrLoadResults(filepath, typeInfo string, c *secded.Codec) (*SimulationStats, error) {
	data, err := LoadResults(filepath)
	if err != nil {
		return nil, err
	}

	if data == nil {
		data = &SimulationStats{
			RunID:    uuid.NewString(),
			TypeInfo: typeInfo,
			ECCInfo:  Md5Sum(c),
			Stats:    make(map[float64]benchmarking.Stats),
		}
	}

	if data.TypeInfo != typeInfo {
		return nil, fmt.Errorf("results loaded do not match the same type expected %v but found %v", typeInfo, data.TypeInfo)
	}
	if data.ECCInfo != Md5Sum(c) {
		return nil, fmt.Errorf("results loaded do not match the ECC")
	}

	logrus.WithFields(logrus.Fields{
		"run":   data.RunID,
		"type":  data.TypeInfo,
		"steps": len(data.Stats),
	}).Debugf("results ready in %v", filepath)
	return data, nil
}

//LoadResults returns nil without an error when filepath does not exist.
func LoadResults(filepath string) (*SimulationStats, error) {
	if _, err := os.Stat(filepath); os.IsNotExist(err) {
		return nil, nil
	}

	bs, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("error while reading file %v: %w", filepath, err)
	}

	var stat SimulationStats
	err = json.Unmarshal(bs, &stat)
	if err != nil {
		return nil, fmt.Errorf("error while unmarshalling file %v: %w", filepath, err)
	}
	return &stat, nil
}

func SaveResults(filepath string, data *SimulationStats) error {
	bs, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("error serializing results: %w", err)
	}

	err = os.WriteFile(filepath, bs, 0644)
	if err != nil {
		return fmt.Errorf("error while saving results to %v: %w", filepath, err)
	}
	return nil
}
