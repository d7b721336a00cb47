// Package profile carries the protocol-level identifiers the decoder needs
// and the global message catalog consumers use to label decoded messages.
//
// The decoder itself interprets only two global message numbers (field
// description and developer data id, which feed the developer-field
// registry) and the reserved field numbers for timestamps and message
// indexes. Everything else here is lookup data for consumers; mapping field
// numbers to named, typed message views stays out of this module entirely.
package profile

import "time"

// MesgNum is a format-wide global message number naming the semantic kind
// of a message, independent of the file-local message type.
type MesgNum uint16

// Global message numbers from the FIT profile.
const (
	MesgNumFileID                  MesgNum = 0
	MesgNumCapabilities            MesgNum = 1
	MesgNumDeviceSettings          MesgNum = 2
	MesgNumUserProfile             MesgNum = 3
	MesgNumHrmProfile              MesgNum = 4
	MesgNumSdmProfile              MesgNum = 5
	MesgNumBikeProfile             MesgNum = 6
	MesgNumZonesTarget             MesgNum = 7
	MesgNumHrZone                  MesgNum = 8
	MesgNumPowerZone               MesgNum = 9
	MesgNumMetZone                 MesgNum = 10
	MesgNumSport                   MesgNum = 12
	MesgNumGoal                    MesgNum = 15
	MesgNumSession                 MesgNum = 18
	MesgNumLap                     MesgNum = 19
	MesgNumRecord                  MesgNum = 20
	MesgNumEvent                   MesgNum = 21
	MesgNumDeviceInfo              MesgNum = 23
	MesgNumWorkout                 MesgNum = 26
	MesgNumWorkoutStep             MesgNum = 27
	MesgNumSchedule                MesgNum = 28
	MesgNumWeightScale             MesgNum = 30
	MesgNumCourse                  MesgNum = 31
	MesgNumCoursePoint             MesgNum = 32
	MesgNumTotals                  MesgNum = 33
	MesgNumActivity                MesgNum = 34
	MesgNumSoftware                MesgNum = 35
	MesgNumFileCapabilities        MesgNum = 37
	MesgNumMesgCapabilities        MesgNum = 38
	MesgNumFieldCapabilities       MesgNum = 39
	MesgNumFileCreator             MesgNum = 49
	MesgNumBloodPressure           MesgNum = 51
	MesgNumSpeedZone               MesgNum = 53
	MesgNumMonitoring              MesgNum = 55
	MesgNumTrainingFile            MesgNum = 72
	MesgNumHrv                     MesgNum = 78
	MesgNumAntRx                   MesgNum = 80
	MesgNumAntTx                   MesgNum = 81
	MesgNumAntChannelID            MesgNum = 82
	MesgNumLength                  MesgNum = 101
	MesgNumMonitoringInfo          MesgNum = 103
	MesgNumPad                     MesgNum = 105
	MesgNumSlaveDevice             MesgNum = 106
	MesgNumConnectivity            MesgNum = 127
	MesgNumWeatherConditions       MesgNum = 128
	MesgNumWeatherAlert            MesgNum = 129
	MesgNumCadenceZone             MesgNum = 131
	MesgNumHr                      MesgNum = 132
	MesgNumSegmentLap              MesgNum = 142
	MesgNumMemoGlob                MesgNum = 145
	MesgNumSegmentID               MesgNum = 148
	MesgNumSegmentLeaderboardEntry MesgNum = 149
	MesgNumSegmentPoint            MesgNum = 150
	MesgNumSegmentFile             MesgNum = 151
	MesgNumWorkoutSession          MesgNum = 158
	MesgNumWatchfaceSettings       MesgNum = 159
	MesgNumGpsMetadata             MesgNum = 160
	MesgNumCameraEvent             MesgNum = 161
	MesgNumTimestampCorrelation    MesgNum = 162
	MesgNumGyroscopeData           MesgNum = 164
	MesgNumAccelerometerData       MesgNum = 165
	MesgNumThreeDSensorCalibration MesgNum = 167
	MesgNumVideoFrame              MesgNum = 169
	MesgNumObdiiData               MesgNum = 174
	MesgNumNmeaSentence            MesgNum = 177
	MesgNumAviationAttitude        MesgNum = 178
	MesgNumVideo                   MesgNum = 184
	MesgNumVideoTitle              MesgNum = 185
	MesgNumVideoDescription        MesgNum = 186
	MesgNumVideoClip               MesgNum = 187
	MesgNumOhrSettings             MesgNum = 188
	MesgNumExdScreenConfiguration  MesgNum = 200
	MesgNumExdDataFieldConfig      MesgNum = 201
	MesgNumExdDataConceptConfig    MesgNum = 202
	MesgNumFieldDescription        MesgNum = 206
	MesgNumDeveloperDataID         MesgNum = 207
	MesgNumMagnetometerData        MesgNum = 208
	MesgNumBarometerData           MesgNum = 209
	MesgNumOneDSensorCalibration   MesgNum = 210
	MesgNumSet                     MesgNum = 225
	MesgNumStressLevel             MesgNum = 227
	MesgNumDiveSettings            MesgNum = 258
	MesgNumDiveGas                 MesgNum = 259
	MesgNumDiveAlarm               MesgNum = 262
	MesgNumExerciseTitle           MesgNum = 264
	MesgNumDiveSummary             MesgNum = 268
	MesgNumJump                    MesgNum = 285
	MesgNumClimbPro                MesgNum = 317
)

// Reserved field definition numbers that appear across message kinds and
// are handled by the decoder itself rather than surfaced as fields.
const (
	FieldNumPartIndex    uint8 = 250
	FieldNumTimestamp    uint8 = 253
	FieldNumMessageIndex uint8 = 254
)

// Field definition numbers inside a field description message (MesgNum 206).
const (
	FieldDescDeveloperDataIndex uint8 = 0
	FieldDescFieldDefNumber     uint8 = 1
	FieldDescBaseTypeID         uint8 = 2
	FieldDescFieldName          uint8 = 3
	FieldDescUnits              uint8 = 8
)

// Field definition numbers inside a developer data id message (MesgNum 207).
const (
	DevDataIDApplicationID      uint8 = 1
	DevDataIDDeveloperDataIndex uint8 = 3
)

// Epoch is the offset in seconds from the Unix epoch to the FIT epoch
// (UTC 00:00:00 Dec 31 1989). FIT timestamps count seconds from it.
const Epoch int64 = 631065600

// UnixTime converts a FIT timestamp to Unix seconds.
func UnixTime(ts uint32) int64 {
	return Epoch + int64(ts)
}

// Time converts a FIT timestamp to a time.Time in UTC.
func Time(ts uint32) time.Time {
	return time.Unix(UnixTime(ts), 0).UTC()
}
