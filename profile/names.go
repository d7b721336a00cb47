package profile

var mesgNames = map[MesgNum]string{
	MesgNumFileID:                  "File ID",
	MesgNumCapabilities:            "Capabilities",
	MesgNumDeviceSettings:          "Device Settings",
	MesgNumUserProfile:             "User Profile",
	MesgNumHrmProfile:              "HRM Profile",
	MesgNumSdmProfile:              "SDM Profile",
	MesgNumBikeProfile:             "Bike Profile",
	MesgNumZonesTarget:             "Zones Target",
	MesgNumHrZone:                  "HR Zone",
	MesgNumPowerZone:               "Power Zone",
	MesgNumMetZone:                 "MET Zone",
	MesgNumSport:                   "Sport",
	MesgNumGoal:                    "Goal",
	MesgNumSession:                 "Session",
	MesgNumLap:                     "Lap",
	MesgNumRecord:                  "Record",
	MesgNumEvent:                   "Event",
	MesgNumDeviceInfo:              "Device Info",
	MesgNumWorkout:                 "Workout",
	MesgNumWorkoutStep:             "Workout Step",
	MesgNumSchedule:                "Schedule",
	MesgNumWeightScale:             "Weight Scale",
	MesgNumCourse:                  "Course",
	MesgNumCoursePoint:             "Course Point",
	MesgNumTotals:                  "Totals",
	MesgNumActivity:                "Activity",
	MesgNumSoftware:                "Software",
	MesgNumFileCapabilities:        "File Capabilities",
	MesgNumMesgCapabilities:        "Message Capabilities",
	MesgNumFieldCapabilities:       "Field Capabilities",
	MesgNumFileCreator:             "File Creator",
	MesgNumBloodPressure:           "Blood Pressure",
	MesgNumSpeedZone:               "Speed Zone",
	MesgNumMonitoring:              "Monitoring",
	MesgNumTrainingFile:            "Training File",
	MesgNumHrv:                     "HRV",
	MesgNumAntRx:                   "ANT RX",
	MesgNumAntTx:                   "ANT TX",
	MesgNumAntChannelID:            "ANT Channel ID",
	MesgNumLength:                  "Length",
	MesgNumMonitoringInfo:          "Monitoring Info",
	MesgNumPad:                     "Pad",
	MesgNumSlaveDevice:             "Slave Device",
	MesgNumConnectivity:            "Connectivity",
	MesgNumWeatherConditions:       "Weather",
	MesgNumWeatherAlert:            "Weather Alert",
	MesgNumCadenceZone:             "Cadence Zone",
	MesgNumHr:                      "HR",
	MesgNumSegmentLap:              "Segment Lap",
	MesgNumMemoGlob:                "Memo Glob",
	MesgNumSegmentID:               "Segment ID",
	MesgNumSegmentLeaderboardEntry: "Segment Leaderboard Entry",
	MesgNumSegmentPoint:            "Segment Point",
	MesgNumSegmentFile:             "Segment File",
	MesgNumWorkoutSession:          "Workout Session",
	MesgNumWatchfaceSettings:       "Watch Face Settings",
	MesgNumGpsMetadata:             "GPS Metadata",
	MesgNumCameraEvent:             "Camera Event",
	MesgNumTimestampCorrelation:    "Timestamp Correlation",
	MesgNumGyroscopeData:           "Gyroscope Data",
	MesgNumAccelerometerData:       "Accelerometer Data",
	MesgNumThreeDSensorCalibration: "3D Sensor Calibration",
	MesgNumVideoFrame:              "Video Frame",
	MesgNumObdiiData:               "OBDII Data",
	MesgNumNmeaSentence:            "NMEA Sentence",
	MesgNumAviationAttitude:        "Aviation Attitude",
	MesgNumVideo:                   "Video",
	MesgNumVideoTitle:              "Video Title",
	MesgNumVideoDescription:        "Video Description",
	MesgNumVideoClip:               "Video Clip",
	MesgNumOhrSettings:             "OHR Settings",
	MesgNumExdScreenConfiguration:  "EXD Screen Configuration",
	MesgNumExdDataFieldConfig:      "EXD Data Field Configuration",
	MesgNumExdDataConceptConfig:    "EXD Data Concept Configuration",
	MesgNumFieldDescription:        "Field Description",
	MesgNumDeveloperDataID:         "Developer Data ID",
	MesgNumMagnetometerData:        "Magnetometer Data",
	MesgNumBarometerData:           "Barometer Data",
	MesgNumOneDSensorCalibration:   "1D Sensor Calibration",
	MesgNumSet:                     "Set",
	MesgNumStressLevel:             "Stress Level",
	MesgNumDiveSettings:            "Dive Settings",
	MesgNumDiveGas:                 "Dive Gas",
	MesgNumDiveAlarm:               "Dive Alarm",
	MesgNumExerciseTitle:           "Exercise Title",
	MesgNumDiveSummary:             "Dive Summary",
	MesgNumJump:                    "Jump",
	MesgNumClimbPro:                "Climb Pro",
}

// String returns the human-readable message name, or "Unknown" for numbers
// outside the catalog (manufacturer-specific messages land here).
func (m MesgNum) String() string {
	if name, ok := mesgNames[m]; ok {
		return name
	}

	return "Unknown"
}
