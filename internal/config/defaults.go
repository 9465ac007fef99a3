package config

const (
	// DefaultUnitCostFile is the default unit-test cost history file
	DefaultUnitCostFile = "ut_time_cost.json"
	// DefaultRegressCostFile is the default integration-test cost history file
	DefaultRegressCostFile = "it_time_cost.json"
	// DefaultLogFile is where the scheduling trace is written
	DefaultLogFile = "split_costs.log"
	// DefaultGroups is the default number of worker slots
	DefaultGroups = 4
	// DefaultOSList is the default comma-separated OS label list
	DefaultOSList = "centos7,ubuntu18,ubuntu16,centos6"
	// DefaultAlgorithm is the partition strategy used when none is requested
	DefaultAlgorithm = "ffd"
	// DefaultTrials is the default verification trial count
	DefaultTrials = 100
	// DefaultTrialItems is the default pool size per verification trial
	DefaultTrialItems = 10
)
