package models

// TopicCount is the number of topics a suggestion always yields.
const TopicCount = 5

// TopicList holds suggested topics in model ranking order.
type TopicList []string
